package game

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Cues,KVStore

// Cues plays fire-and-forget audio cues. Implementations must swallow
// their own failures; nothing here reports errors back to the game.
type Cues interface {
	PlayBeep()
	PlayFlap()
}

// KVStore is a host-provided key/value string store.
type KVStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// NopCues is a Cues that plays nothing.
type NopCues struct{}

// PlayBeep does nothing.
func (NopCues) PlayBeep() {}

// PlayFlap does nothing.
func (NopCues) PlayFlap() {}
