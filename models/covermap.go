package models

// CoverMap maps appearance ID to a displayable image URL. It is built
// by an offline generation step, persisted as a flat JSON object, and
// read-only at render time. Regeneration replaces the whole file.
type CoverMap map[string]string
