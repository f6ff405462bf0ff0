package domain

// Content block slots. Each slot holds a single current value with no
// history; writes upsert, reads return the latest value.
const (
	SlotTopMovingText          = "top-moving-text"
	SlotBannerMovingText       = "banner-moving-text"
	SlotSecondBannerMovingText = "second-banner-moving-text"
	SlotHighlightProductLink   = "highlight-product-link"
)

// ContentBlock is a singleton-per-slot key/value record driving a piece of
// site-wide display text or link.
type ContentBlock struct {
	ID    string `json:"_id"`
	Slot  string `json:"-"`
	Value string `json:"text"`
}
