package metadata

import "testing"

func TestSynthesize(t *testing.T) {
	cases := []struct {
		name       string
		packName   string
		sampleName string
		bpm        string
		key        string
		extension  string
		want       string
	}{
		{
			name:     "all fields",
			packName: "Ghosthack AC2024", sampleName: "Kick Base",
			bpm: "95bpm", key: "Cmaj", extension: ".wav",
			want: "Ghosthack_AC2024_Kick_Base_95bpm_Cmaj.wav",
		},
		{
			name:     "missing bpm",
			packName: "Pack", sampleName: "Pluck", key: "F#min", extension: ".aif",
			want: "Pack_Pluck_Fsmin.aif",
		},
		{
			name:     "missing key",
			packName: "Pack", sampleName: "Groove", bpm: "120bpm", extension: ".mp3",
			want: "Pack_Groove_120bpm.mp3",
		},
		{
			name:     "empty sample name dropped",
			packName: "UnknownPack", extension: ".mid",
			want: "UnknownPack.mid",
		},
		{
			name:     "extension case preserved",
			packName: "Pack", sampleName: "Crash", extension: ".WAV",
			want: "Pack_Crash.WAV",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Synthesize(tc.packName, tc.sampleName, tc.bpm, tc.key, tc.extension)
			if got != tc.want {
				t.Errorf("Synthesize(%q, %q, %q, %q, %q) = %q, want %q",
					tc.packName, tc.sampleName, tc.bpm, tc.key, tc.extension, got, tc.want)
			}
		})
	}
}
