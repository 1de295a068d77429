package prompt

import (
	"bytes"
	"os"
	"testing"
)

func TestSurveyDriverRoutesPromptsToFileWriter(t *testing.T) {
	d := NewSurveyDriver(os.Stderr).(*surveyDriver)
	if got := len(d.askOpts()); got != 1 {
		t.Fatalf("expected stdio option for a file writer, got %d", got)
	}
	d = NewSurveyDriver(&bytes.Buffer{}).(*surveyDriver)
	if got := len(d.askOpts()); got != 0 {
		t.Fatalf("expected default stdio for a plain writer, got %d", got)
	}
}
