// Package audio provides the two sound cues of a run: a looping ambient track
// and a one-shot fail cue.
package audio

// Nop is an audio sink that plays nothing. It is used with --mute and when no
// audio device is available.
type Nop struct{}

func (Nop) PlayAmbient()  {}
func (Nop) PauseAmbient() {}
func (Nop) PlayFail()     {}
