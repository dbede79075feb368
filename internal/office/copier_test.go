package office

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink keeps every emitted event.
type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Emit(e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func (s *recordingSink) Actions() []Action {
	var actions []Action
	for _, e := range s.Events() {
		actions = append(actions, e.Action)
	}
	return actions
}

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestCopier(t *testing.T) (*Copier, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	c := NewCopier("copier-1",
		WithSink(sink),
		WithClock(func() time.Time { return fixedTime }),
	)
	return c, sink
}

func TestNewCopier_StartsOff(t *testing.T) {
	c, sink := newTestCopier(t)

	assert.Equal(t, StateOff, c.State())
	assert.Equal(t, 0, c.Counter())
	assert.Equal(t, 0, c.PrintCounter())
	assert.Equal(t, 0, c.ScanCounter())
	assert.Equal(t, KindCopier, c.Kind())
	assert.Equal(t, "copier-1", c.ID())
	assert.Equal(t, "copier-1", c.Name())
	assert.Empty(t, sink.Events())
}

func TestNewCopier_GeneratesID(t *testing.T) {
	a := NewCopier("")
	b := NewCopier("")

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestCopier_PowerCycleCounter(t *testing.T) {
	c, sink := newTestCopier(t)

	c.PowerOn()
	c.PowerOn()
	assert.Equal(t, 1, c.Counter(), "repeated PowerOn must not count twice")
	assert.Equal(t, StateOn, c.State())

	c.PowerOff()
	c.PowerOff()
	assert.Equal(t, StateOff, c.State())
	assert.Equal(t, 1, c.Counter())

	c.PowerOn()
	assert.Equal(t, 2, c.Counter())

	assert.Equal(t, []Action{
		ActionPowerOn, ActionPowerOn,
		ActionPowerOff, ActionPowerOff,
		ActionPowerOn,
	}, sink.Actions())
}

func TestCopier_ScanScenario(t *testing.T) {
	c, sink := newTestCopier(t)
	c.PowerOn()

	first, err := c.Scan(FormatImage)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "ImageScan1.jpg", first.FileName())
	assert.Equal(t, FormatImage, first.Format())
	assert.Equal(t, 1, c.ScanCounter())

	second, err := c.Scan(FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "PDFScan2.pdf", second.FileName())
	assert.Equal(t, 2, c.ScanCounter())

	require.NoError(t, c.Print(first))
	assert.Equal(t, 1, c.PrintCounter())

	events := sink.Events()
	require.Len(t, events, 4)

	last := events[3]
	assert.Equal(t, ActionPrint, last.Action)
	assert.Equal(t, "ImageScan1.jpg", last.FileName)
	assert.Equal(t, "copier-1", last.DeviceID)
	assert.Equal(t, fixedTime, last.Time)
	assert.Equal(t, 1, last.Counter)
}

func TestCopier_FileNamesFollowScanCounter(t *testing.T) {
	c, _ := newTestCopier(t)
	c.PowerOn()

	want := []struct {
		format Format
		name   string
	}{
		{FormatText, "TextScan1.txt"},
		{FormatImage, "ImageScan2.jpg"},
		{FormatText, "TextScan3.txt"},
		{FormatPDF, "PDFScan4.pdf"},
	}

	for _, w := range want {
		doc, err := c.Scan(w.format)
		require.NoError(t, err)
		assert.Equal(t, w.name, doc.FileName())
	}
}

func TestCopier_OffIsNoOp(t *testing.T) {
	for _, f := range []Format{FormatImage, FormatPDF, FormatText, Format(0), Format(42)} {
		t.Run(f.String(), func(t *testing.T) {
			c, sink := newTestCopier(t)

			doc, err := c.Scan(f)
			assert.NoError(t, err)
			assert.Nil(t, doc)

			assert.NoError(t, c.Print(&Document{format: f, fileName: "x"}))
			assert.NoError(t, c.Print(nil))

			assert.Equal(t, 0, c.ScanCounter())
			assert.Equal(t, 0, c.PrintCounter())
			assert.Empty(t, sink.Events())
		})
	}
}

func TestCopier_OffAfterUse(t *testing.T) {
	c, sink := newTestCopier(t)
	c.PowerOn()
	doc, err := c.Scan(FormatText)
	require.NoError(t, err)
	c.PowerOff()

	before := len(sink.Events())

	got, err := c.Scan(FormatText)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Print(doc))

	assert.Equal(t, 1, c.ScanCounter())
	assert.Equal(t, 0, c.PrintCounter())
	assert.Len(t, sink.Events(), before)
}

func TestCopier_PrintNilWhileOn(t *testing.T) {
	c, sink := newTestCopier(t)
	c.PowerOn()

	err := c.Print(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilDocument)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, c.PrintCounter())
	assert.Equal(t, []Action{ActionPowerOn}, sink.Actions())
}

func TestCopier_ScanUnsupportedFormat(t *testing.T) {
	c, sink := newTestCopier(t)
	c.PowerOn()

	doc, err := c.Scan(Format(99))
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, c.ScanCounter())
	assert.Equal(t, []Action{ActionPowerOn}, sink.Actions())

	// The failed scan must not leave a gap in the numbering.
	next, err := c.Scan(FormatImage)
	require.NoError(t, err)
	assert.Equal(t, "ImageScan1.jpg", next.FileName())
}

func TestCopier_ScanAndPrint(t *testing.T) {
	c, sink := newTestCopier(t)
	c.PowerOn()

	require.NoError(t, c.ScanAndPrint())

	assert.Equal(t, 1, c.ScanCounter())
	assert.Equal(t, 1, c.PrintCounter())

	events := sink.Events()
	require.Len(t, events, 3)
	assert.Equal(t, ActionScan, events[1].Action)
	assert.Equal(t, ActionPrint, events[2].Action)
	assert.Equal(t, "ImageScan1.jpg", events[1].FileName)
	assert.Equal(t, "ImageScan1.jpg", events[2].FileName)
}

func TestCopier_ScanAndPrintWhileOff(t *testing.T) {
	c, sink := newTestCopier(t)

	assert.NoError(t, c.ScanAndPrint())
	assert.Equal(t, 0, c.ScanCounter())
	assert.Equal(t, 0, c.PrintCounter())
	assert.Empty(t, sink.Events())
}

func TestCopier_SinkErrorDoesNotFailOperation(t *testing.T) {
	logger := &capturingLogger{}
	c := NewCopier("copier-1",
		WithSink(SinkFunc(func(Event) error { return errors.New("broker down") })),
		WithLogger(logger),
	)

	c.PowerOn()
	doc, err := c.Scan(FormatPDF)
	require.NoError(t, err)
	require.NoError(t, c.Print(doc))

	assert.Equal(t, 1, c.ScanCounter())
	assert.Equal(t, 1, c.PrintCounter())
	assert.Equal(t, 3, logger.warnings())
}

func TestCopier_ConcurrentUse(t *testing.T) {
	sink := &recordingSink{}
	c := NewCopier("copier-1", WithSink(sink))

	const workers = 8
	const rounds = 200

	var (
		wg          sync.WaitGroup
		docsMu      sync.Mutex
		scansSeen   int
		offViolated bool
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				switch (w + i) % 4 {
				case 0:
					c.PowerOn()
				case 1:
					c.PowerOff()
				case 2:
					doc, err := c.Scan(FormatText)
					if err != nil {
						t.Errorf("Scan() error = %v", err)
						return
					}
					if doc != nil {
						docsMu.Lock()
						scansSeen++
						docsMu.Unlock()
					}
				case 3:
					_ = c.ScanAndPrint()
				}
			}
		}(w)
	}
	wg.Wait()

	var scans, prints, cycles int
	on := false
	for _, e := range sink.Events() {
		switch e.Action {
		case ActionPowerOn:
			if !on {
				cycles++
			}
			on = true
		case ActionPowerOff:
			on = false
		case ActionScan:
			if !on {
				offViolated = true
			}
			scans++
		case ActionPrint:
			if !on {
				offViolated = true
			}
			prints++
		}
	}

	assert.False(t, offViolated, "document produced while off")
	assert.Equal(t, scans, c.ScanCounter())
	assert.Equal(t, prints, c.PrintCounter())
	assert.Equal(t, cycles, c.Counter())
	assert.LessOrEqual(t, scansSeen, c.ScanCounter())
}

// capturingLogger counts warnings.
type capturingLogger struct {
	noopLogger
	mu    sync.Mutex
	warns int
}

func (l *capturingLogger) Warn(string, ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns++
}

func (l *capturingLogger) warnings() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.warns
}
