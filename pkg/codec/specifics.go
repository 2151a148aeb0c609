package codec

// specifics is the codec specific payload of a VideoCodec. The concrete type
// is the tag: *VP8Settings, *VP9Settings or *H264Settings.
type specifics interface {
	codecType() Type
	clone() specifics
}

func (s *VP8Settings) codecType() Type { return VP8 }
func (s *VP8Settings) clone() specifics {
	c := *s
	return &c
}

func (s *VP9Settings) codecType() Type { return VP9 }
func (s *VP9Settings) clone() specifics {
	c := *s
	return &c
}

func (s *H264Settings) codecType() Type { return H264 }
func (s *H264Settings) clone() specifics {
	c := *s
	return &c
}

// SetVP8 replaces the codec specific payload with VP8 settings.
func (c *VideoCodec) SetVP8(s VP8Settings) { c.specifics = &s }

// SetVP9 replaces the codec specific payload with VP9 settings.
func (c *VideoCodec) SetVP9(s VP9Settings) { c.specifics = &s }

// SetH264 replaces the codec specific payload with H264 settings.
func (c *VideoCodec) SetH264(s H264Settings) { c.specifics = &s }


// SpecificsType reports which payload the record carries, Unknown if none.
func (c *VideoCodec) SpecificsType() Type {
	if c.specifics == nil {
		return Unknown
	}
	return c.specifics.codecType()
}

// VP8 returns the VP8 payload, or nil if the record carries none.
func (c *VideoCodec) VP8() *VP8Settings {
	s, _ := c.specifics.(*VP8Settings)
	return s
}

// VP9 returns the VP9 payload, or nil if the record carries none.
func (c *VideoCodec) VP9() *VP9Settings {
	s, _ := c.specifics.(*VP9Settings)
	return s
}

// H264 returns the H264 payload, or nil if the record carries none.
func (c *VideoCodec) H264() *H264Settings {
	s, _ := c.specifics.(*H264Settings)
	return s
}
