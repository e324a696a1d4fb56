package models

// ContactChannel is a direct way to reach the portfolio owner
type ContactChannel struct {
	Title string `json:"title" yaml:"title"`
	Link  Link   `json:"link" yaml:"link"`
}

// SocialLink is a profile on an external platform
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	Link     Link   `json:"link" yaml:"link"`
}

// Contact collects the closing sections of the page
type Contact struct {
	Intro       string           `json:"intro" yaml:"intro"`
	Channels    []ContactChannel `json:"channels" yaml:"channels"`
	Pitch       Pitch            `json:"pitch" yaml:"pitch"`
	ConnectNote string           `json:"connect_note" yaml:"connectNote"`
	Status      Pitch            `json:"status" yaml:"status"`
	Socials     []SocialLink     `json:"socials" yaml:"socials"`
}

// Pitch is a small call-out card with a heading, a line of copy and badges
type Pitch struct {
	Heading string   `json:"heading" yaml:"heading"`
	Body    string   `json:"body" yaml:"body"`
	Badges  []string `json:"badges" yaml:"badges"`
}
