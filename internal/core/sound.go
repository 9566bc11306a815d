package core

// Sound identifies a sound effect. Playback happens outside the game logic
// so that sessions stay deterministic and testable.
type Sound int

const (
	SoundNone Sound = iota
	SoundBrickBump
	SoundUnbreakableBump
	SoundPoisonBump
	SoundBrickDestroyed
	SoundPoisonDestroyed
	SoundPaddleBump
	SoundBallMissed
	SoundBallLaunch
	SoundNextLevel
	SoundGameLost
	SoundWallOfFame
)

var soundNames = map[Sound]string{
	SoundNone:            "none",
	SoundBrickBump:       "brick-bump",
	SoundUnbreakableBump: "unbreakable-bump",
	SoundPoisonBump:      "poison-bump",
	SoundBrickDestroyed:  "brick-destroyed",
	SoundPoisonDestroyed: "poison-destroyed",
	SoundPaddleBump:      "paddle-bump",
	SoundBallMissed:      "ball-missed",
	SoundBallLaunch:      "ball-launch",
	SoundNextLevel:       "next-level",
	SoundGameLost:        "game-lost",
	SoundWallOfFame:      "wall-of-fame",
}

// String returns the sound name used in logs and config files.
func (s Sound) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "unknown"
}

// Sounds returns every playable sound, in declaration order.
func Sounds() []Sound {
	out := make([]Sound, 0, len(soundNames)-1)
	for s := SoundBrickBump; s <= SoundWallOfFame; s++ {
		out = append(out, s)
	}
	return out
}

// SoundPlayer plays sound effects. Play must not block the caller.
type SoundPlayer interface {
	Play(s Sound)
}

// Mute is a SoundPlayer that discards every sound.
type Mute struct{}

// Play implements SoundPlayer.
func (Mute) Play(Sound) {}
