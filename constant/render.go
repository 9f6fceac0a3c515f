package constant

// OpaqueAlpha is the alpha above which a sprite pixel counts for collision
const OpaqueAlpha = 127

// HalfBlock draws two vertical pixels per terminal cell (fg = top, bg = bottom)
const HalfBlock = '▀'
