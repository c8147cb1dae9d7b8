package audio

import (
	"testing"
)

func TestSoundTypeString(t *testing.T) {
	tests := []struct {
		st   SoundType
		want string
	}{
		{SoundEat, "eat"},
		{SoundLevelUp, "levelup"},
		{SoundCrash, "crash"},
		{soundTypeCount, "unknown"},
		{SoundType(-1), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.st.String(); got != tt.want {
			t.Errorf("SoundType(%d): expected %q, got %q", tt.st, tt.want, got)
		}
	}
}
