package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.viam.com/test"
)

func newBufferLogger(name string, level Level) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &impl{name, NewAtomicLevelAt(level), true, []Appender{NewWriterAppender(buf)}}, buf
}

func TestConsoleFormat(t *testing.T) {
	logger, buf := newBufferLogger("grid", DEBUG)

	logger.Info("built index")
	line, err := buf.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)
	parts := strings.Split(strings.TrimSuffix(line, "\n"), "\t")
	test.That(t, parts, test.ShouldHaveLength, 5)
	test.That(t, len(parts[0]), test.ShouldEqual, len("2006-01-02T15:04:05.000Z"))
	test.That(t, parts[1], test.ShouldEqual, "INFO")
	test.That(t, parts[2], test.ShouldEqual, "grid")
	test.That(t, parts[3], test.ShouldStartWith, "logging/impl_test.go:")
	test.That(t, parts[4], test.ShouldEqual, "built index")

	logger.Debugw("query", "kind", "capsule", "matches", 2)
	line, err = buf.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)
	parts = strings.Split(strings.TrimSuffix(line, "\n"), "\t")
	test.That(t, parts, test.ShouldHaveLength, 6)
	test.That(t, parts[5], test.ShouldEqual, `{"kind":"capsule","matches":2}`)
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger("", WARN)
	logger.Debug("dropped")
	logger.Info("dropped")
	test.That(t, buf.Len(), test.ShouldEqual, 0)

	logger.Warnf("kept %d", 1)
	test.That(t, buf.String(), test.ShouldContainSubstring, "kept 1")

	logger.SetLevel(ERROR)
	buf.Reset()
	logger.Warn("dropped")
	test.That(t, buf.Len(), test.ShouldEqual, 0)
	test.That(t, logger.GetLevel(), test.ShouldEqual, ERROR)
}

func TestSubloggerNaming(t *testing.T) {
	logger, observed := NewObservedTestLogger(t)
	sub := logger.Sublogger("selection").Sublogger("brush")
	sub.Infow("resized", "radius", 0.3)

	entries := observed.All()
	test.That(t, entries, test.ShouldHaveLength, 1)
	test.That(t, entries[0].LoggerName, test.ShouldEqual, "selection.brush")
	test.That(t, entries[0].ContextMap()["radius"], test.ShouldEqual, 0.3)
	test.That(t, logger.Sync(), test.ShouldBeNil)
}

func TestUnpairedKey(t *testing.T) {
	logger, observed := NewObservedTestLogger(t)
	logger.Errorw("bad call", "dangling")
	entries := observed.FilterMessage("bad call").All()
	test.That(t, entries, test.ShouldHaveLength, 1)
	test.That(t, entries[0].ContextMap()["dangling"], test.ShouldNotBeNil)
}

type region string

func (r region) String() string { return "region:" + string(r) }

func TestFieldKeys(t *testing.T) {
	logger, observed := NewObservedTestLogger(t)
	logger.Infow("keys", region("north"), 1, 7, "seven")

	entries := observed.All()
	test.That(t, entries, test.ShouldHaveLength, 1)
	fields := entries[0].ContextMap()
	test.That(t, fields["region:north"], test.ShouldEqual, int64(1))
	test.That(t, fields["7"], test.ShouldEqual, "seven")
	test.That(t, entries[0].Caller.TrimmedPath(), test.ShouldStartWith, "logging/impl_test.go:")
}

func TestLevelFromString(t *testing.T) {
	for inp, want := range map[string]Level{"debug": DEBUG, "INFO": INFO, "warning": WARN, "Error": ERROR} {
		got, err := LevelFromString(inp)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got, test.ShouldEqual, want)
	}
	_, err := LevelFromString("loud")
	test.That(t, err, test.ShouldNotBeNil)
}
