package audio

// Player plays named sounds fire-and-forget
type Player interface {
	Play(name string)
}

// Nop is a silent Player used when audio is disabled or unavailable
type Nop struct{}

// Play implements Player
func (Nop) Play(string) {}

// Recorder is a Player that remembers what it was asked to play
type Recorder struct {
	Played []string
}

// Play implements Player
func (r *Recorder) Play(name string) {
	r.Played = append(r.Played, name)
}
