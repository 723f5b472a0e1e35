package valueobjects

import (
	"strings"

	pkgerrors "accessengine-backend/pkg/errors"
)

// ChannelType identifies the kind of contact channel
type ChannelType string

const (
	ChannelTwitter   ChannelType = "twitter"
	ChannelInstagram ChannelType = "instagram"
	ChannelEmail     ChannelType = "email"
	ChannelLinkedIn  ChannelType = "linkedin"
	ChannelPhone     ChannelType = "phone"
	ChannelYouTube   ChannelType = "youtube"
	ChannelTikTok    ChannelType = "tiktok"
	ChannelOther     ChannelType = "other"
)

// ParseChannelType normalizes a channel type string; unknown kinds collapse
// to ChannelOther instead of failing, since channel data is scraped and messy.
func ParseChannelType(s string) ChannelType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "twitter", "x":
		return ChannelTwitter
	case "instagram", "ig":
		return ChannelInstagram
	case "email", "mail":
		return ChannelEmail
	case "linkedin":
		return ChannelLinkedIn
	case "phone", "tel", "sms":
		return ChannelPhone
	case "youtube":
		return ChannelYouTube
	case "tiktok":
		return ChannelTikTok
	default:
		return ChannelOther
	}
}

// ContactChannel is a value object for one way of reaching a person.
// Channels keep their submission order; the first channel is the preferred
// one when drafting outreach.
type ContactChannel struct {
	channelType ChannelType
	handle      string
	public      bool
}

// NewContactChannel creates a contact channel with validation
func NewContactChannel(channelType ChannelType, handle string, public bool) (ContactChannel, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return ContactChannel{}, pkgerrors.ErrChannelHandleRequired
	}

	return ContactChannel{
		channelType: channelType,
		handle:      handle,
		public:      public,
	}, nil
}

// Type returns the channel type
func (c ContactChannel) Type() ChannelType {
	return c.channelType
}

// Handle returns the channel handle
func (c ContactChannel) Handle() string {
	return c.handle
}

// IsPublic reports whether the channel is publicly visible
func (c ContactChannel) IsPublic() bool {
	return c.public
}

// IsZero checks if the channel is the zero value
func (c ContactChannel) IsZero() bool {
	return c.handle == ""
}

// Equals checks if two channels are equal
func (c ContactChannel) Equals(other ContactChannel) bool {
	return c.channelType == other.channelType &&
		c.handle == other.handle &&
		c.public == other.public
}

// Display renders the channel for previews, e.g. "twitter:@handle"
func (c ContactChannel) Display() string {
	return string(c.channelType) + ":" + c.handle
}
