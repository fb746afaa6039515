package state

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuestep/internal/value"
)

func TestParseScript(t *testing.T) {
	script := `# start in percent
focus
type 150
blur

unit px
type 12,5
commit
step +
dec
hover minus on
`
	events, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)
	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []EventKind{FocusEvent, EditEvent, BlurEvent, UnitEvent, EditEvent, BlurEvent, StepEvent, StepEvent, HoverEvent}, kinds)
	assert.Equal(t, "150", events[1].Text)
	assert.Equal(t, value.Pixel, events[3].Unit)
	assert.Equal(t, StepSize, events[6].Delta)
	assert.Equal(t, -StepSize, events[7].Delta)
	assert.True(t, events[8].On)
	assert.Equal(t, HoverMinusTarget, events[8].Target)
}

func TestParseScriptErrors(t *testing.T) {
	_, err := ParseScript(strings.NewReader("focus\njump 3\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEvent))
	assert.Contains(t, err.Error(), "line 2")

	for _, bad := range []string{"step *", "unit em", "hover minus", "hover nose on", "hover plus maybe"} {
		_, err := ParseEvent(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseEventTypeKeepsText(t *testing.T) {
	e, err := ParseEvent("type")
	require.NoError(t, err)
	assert.Equal(t, "", e.Text)
	e, err = ParseEvent("type 1 2")
	require.NoError(t, err)
	assert.Equal(t, "1 2", e.Text)
}

func TestApplyScenario(t *testing.T) {
	events, err := ParseScript(strings.NewReader("focus\ntype 150\nblur\nunit px\nfocus\ntype 150\nblur\nunit %\n"))
	require.NoError(t, err)
	s := New()
	for _, e := range events {
		s = Apply(s, e)
	}
	assert.Equal(t, "100", s.Text)
	assert.Equal(t, 100.0, s.PreviousValid)
	assert.Equal(t, value.Percent, s.Unit)
}

func TestApplyHoverKeepsOtherFlags(t *testing.T) {
	s := Apply(New(), Event{Kind: HoverEvent, Target: HoverPlusTarget, On: true})
	s = Apply(s, Event{Kind: HoverEvent, Target: HoverFieldTarget, On: true})
	if !s.HoverPlus || !s.HoverField || s.HoverMinus {
		t.Fatalf("unexpected hover flags: %+v", s)
	}
}

func TestControllerSerialisesDispatch(t *testing.T) {
	c := NewController(SelectUnit(New(), value.Pixel))
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Dispatch(Event{Kind: StepEvent, Delta: 1})
		}()
	}
	wg.Wait()
	if got := c.State().Value; got != 51 {
		t.Fatalf("expected 51 after 50 concurrent steps, got %v", got)
	}
}
