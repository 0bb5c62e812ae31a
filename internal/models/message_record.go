package models

import (
	"time"
)

// MessageRecord holds the metadata for a bot-composed bilingual embed message.
// Records are persisted so the translate button keeps working after a restart.
type MessageRecord struct {
	// MessageID is the Discord message ID of the sent embed
	MessageID string `json:"message_id"`

	// ChannelID is the channel the message was sent to
	ChannelID string `json:"channel_id"`

	// TitleEN and DescriptionEN are the English title and body
	TitleEN       string `json:"title_en"`
	DescriptionEN string `json:"description_en"`

	// TitleHI and DescriptionHI are the Hindi translations, optional
	TitleHI       string `json:"title_hi,omitempty"`
	DescriptionHI string `json:"description_hi,omitempty"`

	// Color is the embed color
	Color int `json:"color"`

	// ImageURL and ThumbnailURL are optional styling attachments
	ImageURL     string `json:"image_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	// AuthorID is the Discord user ID of the staff member who composed it
	AuthorID string `json:"author_id"`

	// SentAt is when the message was first sent
	SentAt time.Time `json:"sent_at"`
}
