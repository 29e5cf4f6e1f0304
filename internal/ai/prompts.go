package ai

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MaciejWiatr/next-a11y-sub000/internal/pagectx"
)

// Output length caps. Screen readers read alt text linearly, so long
// generated text is worse than none.
const (
	maxAltLen   = 125
	maxLabelLen = 60
	maxTitleLen = 70
)

const altSystem = `You write alt text for images on websites.
Reply with the alt text only: a single short phrase, no quotes, no "image of" or "picture of" prefix.
Describe what the image shows and why it matters in context.`

const labelSystem = `You write aria-label values for icon-only buttons and links.
Reply with the label only: a short action phrase like "Open menu", no quotes, no punctuation.
Name the action the control performs, not the icon's appearance.`

const titleSystem = `You write HTML document titles for web pages.
Reply with the title only: a short phrase naming the page, no quotes, no site name suffix.`

// AltPrompt builds the generation request for image alt text
func AltPrompt(pc pagectx.Context, src string) (system, prompt string) {
	var b strings.Builder
	b.WriteString("Write alt text for the attached image.")
	if src != "" {
		fmt.Fprintf(&b, " Its source path is %q.", src)
	}
	writeContext(&b, pc)
	writeLocale(&b, pc.Locale)
	return altSystem, b.String()
}

// LabelPrompt builds the generation request for an icon control's
// aria-label. Kind is the element kind ("button", "link", "input").
func LabelPrompt(pc pagectx.Context, kind, iconName string) (system, prompt string) {
	var b strings.Builder
	if iconName != "" {
		fmt.Fprintf(&b, "Write an aria-label for a %s showing a %q icon.", kind, iconName)
	} else {
		fmt.Fprintf(&b, "Write an aria-label for an icon-only %s.", kind)
	}
	writeContext(&b, pc)
	writeLocale(&b, pc.Locale)
	return labelSystem, b.String()
}

// TitlePrompt builds the generation request for a page title
func TitlePrompt(pc pagectx.Context) (system, prompt string) {
	var b strings.Builder
	b.WriteString("Write a document title for this page.")
	writeContext(&b, pc)
	writeLocale(&b, pc.Locale)
	return titleSystem, b.String()
}

func writeContext(b *strings.Builder, pc pagectx.Context) {
	if pc.Route != "" {
		fmt.Fprintf(b, " The page route is %q.", pc.Route)
	}
	if pc.Component != "" {
		fmt.Fprintf(b, " The component is named %q.", pc.Component)
	}
	if len(pc.Headings) > 0 {
		fmt.Fprintf(b, " Page headings: %s.", strings.Join(pc.Headings, "; "))
	}
}

func writeLocale(b *strings.Builder, locale string) {
	if locale != "" {
		fmt.Fprintf(b, " Respond in the language of locale %q.", locale)
	}
}

// Sanitize normalizes generated text for use as an attribute value:
// collapse whitespace, strip wrapping quotes and trailing periods, and
// enforce the length cap. Empty output means the generation is unusable.
func Sanitize(text string, maxLen int) string {
	text = strings.Join(strings.Fields(text), " ")
	text = strings.Trim(text, `"'`)
	text = strings.TrimSuffix(text, ".")
	if text == "" {
		return ""
	}
	if len(text) > maxLen {
		cut := truncateRunes(text, maxLen)
		if i := strings.LastIndexByte(cut, ' '); i > 0 {
			cut = cut[:i]
		}
		text = cut
	}
	return text
}

// truncateRunes cuts text to at most n bytes without splitting a rune
func truncateRunes(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}
