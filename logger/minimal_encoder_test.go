package logger

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/i18ntypes/errors"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

// TestMinimalEncoderNeverDiscardsFields ensures the minimal encoder
// never silently drops log fields.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "typegen",
		Message:    "Types generated",
	}

	testFields := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String(FieldOutput, "src/lib/i18n/i18n.d.ts"), "output=src/lib/i18n/i18n.d.ts"},
		{zap.Int(FieldNamespaces, 3), "namespaces=3"},
		{zap.Strings("names", []string{"common", "errors"}), "names=[common errors]"},
		{zap.Bool("watch", true), "watch=true"},
		{zap.Float64("ratio", 0.5), "ratio=0.5"},
		{zap.Error(nil), ""},
		{zap.Error(errors.New("boom")), "error=boom"},
		{zap.String("field.with.dots", "x"), "field.with.dots=x"},
	}

	var allFields []zapcore.Field
	for _, tf := range testFields {
		allFields = append(allFields, tf.field)
	}

	buf, err := encoder.EncodeEntry(entry, allFields)
	require.NoError(t, err)

	clean := stripANSI(buf.String())
	for _, tf := range testFields {
		if tf.mustFind != "" {
			assert.Contains(t, clean, tf.mustFind)
		}
	}
	assert.NotContains(t, clean, "errorVerbose")
}

func TestMinimalEncoderLayout(t *testing.T) {
	encoder := newMinimalEncoder()
	at := time.Date(2026, 1, 2, 13, 4, 35, 0, time.UTC)

	buf, err := encoder.EncodeEntry(zapcore.Entry{
		Level:      zapcore.WarnLevel,
		Time:       at,
		LoggerName: "typegen",
		Message:    "No locale files found for type generation.",
	}, []zapcore.Field{zap.String(FieldDir, "locales")})
	require.NoError(t, err)

	clean := stripANSI(buf.String())
	assert.Equal(t, "13:04:35  WARN  typegen  No locale files found for type generation.  dir=locales\n", clean)
}

func TestMinimalEncoderInfoHasNoLevel(t *testing.T) {
	encoder := newMinimalEncoder()

	buf, err := encoder.EncodeEntry(zapcore.Entry{
		Level:   zapcore.InfoLevel,
		Time:    time.Now(),
		Message: "hello",
	}, nil)
	require.NoError(t, err)

	clean := stripANSI(buf.String())
	assert.False(t, strings.Contains(clean, "INFO"), clean)
	assert.True(t, strings.HasSuffix(clean, "  hello\n"), clean)
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("everforest")

	SetTheme("gruvbox")
	assert.Equal(t, gruvbox, colors())

	SetTheme("solarized")
	assert.Equal(t, gruvbox, colors(), "unknown themes are ignored")

	SetTheme("everforest")
	assert.Equal(t, everforest, colors())
}
