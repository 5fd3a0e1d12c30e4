// Package i18n carries the user-facing strings of the toolkit in English and
// Farsi. Farsi decks render right-to-left; callers read RTL from the
// dictionary instead of inspecting the language code.
package i18n

// Language is a supported UI language.
type Language string

const (
	English Language = "en"
	Farsi   Language = "fa"
)

// Dictionary holds the localized strings used by the mutation API and CLI.
type Dictionary struct {
	RTL bool

	NewSlide     string
	NewSlideDesc string
	CopySuffix   string

	ErrLastSlide   string
	ErrLastSection string
	ResetConfirm   string
}

var dictionaries = map[Language]*Dictionary{
	English: {
		RTL:            false,
		NewSlide:       "New Slide",
		NewSlideDesc:   "Click to edit description",
		CopySuffix:     "(Copy)",
		ErrLastSlide:   "Cannot delete the last slide.",
		ErrLastSection: "Must have at least one section.",
		ResetConfirm:   "Are you sure you want to reset everything? This will restore the original template and default camera settings. All changes will be lost.",
	},
	Farsi: {
		RTL:            true,
		NewSlide:       "اسلاید جدید",
		NewSlideDesc:   "برای ویرایش توضیحات کلیک کنید",
		CopySuffix:     "(کپی)",
		ErrLastSlide:   "آخرین اسلاید قابل حذف نیست.",
		ErrLastSection: "حداقل یک بخش لازم است.",
		ResetConfirm:   "آیا مطمئن هستید؟ این کار تمام تغییرات را پاک کرده و به حالت اولیه باز می‌گرداند.",
	},
}

// For returns the dictionary for a language, falling back to English.
func For(lang Language) *Dictionary {
	if d, ok := dictionaries[lang]; ok {
		return d
	}
	return dictionaries[English]
}
