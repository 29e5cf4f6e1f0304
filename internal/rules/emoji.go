package rules

import (
	"fmt"
	"strings"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// EmojiSpan is one emoji occurrence inside a text run. Offsets are byte
// positions relative to the text.
type EmojiSpan struct {
	Start int
	End   int
	Emoji string
}

const (
	zeroWidthJoiner   = 0x200D
	variationSelector = 0xFE0F
	textSelector      = 0xFE0E
)

// isEmojiRune covers the pictographic blocks that render as emoji in
// browsers. Deliberately excludes arrows and other symbols with common
// textual use.
func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF, // symbols & pictographs
		r >= 0x1F600 && r <= 0x1F64F, // emoticons
		r >= 0x1F680 && r <= 0x1F6FF, // transport
		r >= 0x1F900 && r <= 0x1F9FF, // supplemental symbols
		r >= 0x1FA70 && r <= 0x1FAFF, // extended-A
		r >= 0x1F1E6 && r <= 0x1F1FF, // regional indicators
		r >= 0x2600 && r <= 0x26FF,   // misc symbols
		r >= 0x2700 && r <= 0x27BF,   // dingbats
		r >= 0x2B00 && r <= 0x2BFF:   // stars and similar
		return true
	}
	return false
}

func isEmojiModifier(r rune) bool {
	return r == variationSelector || r == textSelector ||
		(r >= 0x1F3FB && r <= 0x1F3FF) // skin tones
}

// FindEmoji locates emoji occurrences, expanding zero-width-joined
// multi-codepoint sequences into a single span.
func FindEmoji(text string) []EmojiSpan {
	var spans []EmojiSpan
	runes := []rune(text)

	// Byte offset of each rune, plus the terminal offset.
	offsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		offsets[i] = pos
		pos += len(string(r))
	}
	offsets[len(runes)] = pos

	for i := 0; i < len(runes); {
		if !isEmojiRune(runes[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(runes) {
			if isEmojiModifier(runes[j]) {
				j++
				continue
			}
			if runes[j] == zeroWidthJoiner && j+1 < len(runes) && isEmojiRune(runes[j+1]) {
				j += 2
				continue
			}
			break
		}
		spans = append(spans, EmojiSpan{
			Start: offsets[i],
			End:   offsets[j],
			Emoji: string(runes[i:j]),
		})
		i = j
	}
	return spans
}

// emojiNames maps common emoji to accessible names. Lookup strips
// variation selectors first; anything unknown falls back to "emoji".
var emojiNames = map[string]string{
	"🎉": "party popper",
	"❤":  "heart",
	"👍": "thumbs up",
	"👎": "thumbs down",
	"🔥": "fire",
	"⭐":  "star",
	"🚀": "rocket",
	"✨":  "sparkles",
	"😀": "grinning face",
	"😊": "smiling face",
	"🙏": "folded hands",
	"💡": "light bulb",
	"⚠":  "warning",
	"✅":  "check mark",
	"❌":  "cross mark",
	"📧": "email",
	"📅": "calendar",
	"🔍": "magnifying glass",
	"🎨": "palette",
	"👋": "waving hand",
	"💻": "laptop",
	"📱": "mobile phone",
	"🏠": "house",
	"☀":  "sun",
	"🌙": "moon",
}

// EmojiName returns the accessible name for an emoji sequence,
// defaulting to "emoji" for anything not in the table.
func EmojiName(emoji string) string {
	key := strings.Map(func(r rune) rune {
		if r == variationSelector || r == textSelector {
			return -1
		}
		return r
	}, emoji)
	if name, ok := emojiNames[key]; ok {
		return name
	}
	return "emoji"
}

// EmojiLabelRule wraps bare emoji in text nodes with an accessible span.
// Each unwrapped occurrence is its own violation; text around the match
// is left untouched.
type EmojiLabelRule struct{}

func (r *EmojiLabelRule) ID() string            { return IDEmojiLabel }
func (r *EmojiLabelRule) Type() domain.RuleType { return domain.RuleTypeDeterministic }

func (r *EmojiLabelRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	var out []domain.Violation
	for _, el := range file.Elements {
		if isAccessibleEmojiSpan(el) {
			continue
		}
		for _, child := range el.Children {
			if child.Kind != parser.ChildText {
				continue
			}
			for _, span := range FindEmoji(child.Text) {
				absStart := child.Start + span.Start
				absEnd := child.Start + span.End
				line, col := file.Position(absStart)
				out = append(out, domain.Violation{
					Rule:    IDEmojiLabel,
					File:    file.Path,
					Line:    line,
					Column:  col,
					Element: el.Snippet(),
					Message: fmt.Sprintf("emoji %q has no text alternative", span.Emoji),
					Fix: &domain.Fix{
						Type:      domain.FixWrapElement,
						Attribute: "aria-label",
						Value:     domain.LiteralValue(EmojiName(span.Emoji)),
						Target:    &SpanTarget{File: file, Start: absStart, End: absEnd},
					},
				})
			}
		}
	}
	return out
}

// isAccessibleEmojiSpan matches <span role="img" aria-label="...">,
// whose emoji content is already announced correctly.
func isAccessibleEmojiSpan(el *parser.Element) bool {
	if el.Tag != "span" {
		return false
	}
	role := el.Attr("role")
	if role == nil || role.Value != "img" {
		return false
	}
	label := el.Attr("aria-label")
	return label != nil && (label.IsExpr || strings.TrimSpace(label.Value) != "")
}
