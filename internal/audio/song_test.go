package audio

import "testing"

func TestSongBuilderFirstPushSetsStartTempo(t *testing.T) {
	b := NewSongBuilder()

	if err := b.PushTempo(Tempo{Value: 90}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if b.StartTempo() != 90 {
		t.Errorf("Expected start tempo 90, got %d", b.StartTempo())
	}

	song, err := b.Song(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(song.TempoChanges) != 0 {
		t.Errorf("Expected no tempo changes after the first push, got %v", song.TempoChanges)
	}
}

func TestSongBuilderRejectsZeroTempo(t *testing.T) {
	b := NewSongBuilder()
	if err := b.PushTempo(Tempo{Value: 0}); err == nil {
		t.Fatal("Expected an error for a zero tempo")
	}
}

func TestSongBuilderRejectsNonPositiveSum(t *testing.T) {
	b := NewSongBuilder()
	if err := b.PushTempo(Tempo{Value: 60}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := b.PushTempo(Tempo{Value: -60}); err == nil {
		t.Fatal("Expected an error when the running tempo drops to zero")
	}
	if err := b.PushTempo(Tempo{Value: -20}); err != nil {
		t.Fatalf("Expected a negative delta above zero to be fine, got %v", err)
	}
}

func TestSongWithoutTempoFails(t *testing.T) {
	b := NewSongBuilder()
	if _, err := b.Song(nil); err == nil {
		t.Fatal("Expected an error building a song without a tempo")
	}
}
