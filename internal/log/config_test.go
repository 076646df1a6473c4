package log

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

// ModuleLevelTestSuite tests env-driven module level resolution
type ModuleLevelTestSuite struct {
	suite.Suite
	originalEnvFunc func(string) (string, bool)
	testEnv         map[string]string
}

func (s *ModuleLevelTestSuite) SetupTest() {
	s.originalEnvFunc = envFunc
	s.testEnv = make(map[string]string)

	envFunc = func(key string) (string, bool) {
		v, ok := s.testEnv[key]
		return v, ok && v != ""
	}
}

func (s *ModuleLevelTestSuite) TearDownTest() {
	envFunc = s.originalEnvFunc
}

func TestModuleLevelTestSuite(t *testing.T) {
	suite.Run(t, new(ModuleLevelTestSuite))
}

func (s *ModuleLevelTestSuite) TestDefaultIsInfo() {
	s.Equal(zapcore.InfoLevel, moduleLevel([]string{"Router"}))
}

func (s *ModuleLevelTestSuite) TestGlobalLevel() {
	s.testEnv["LOG_LEVEL"] = "debug"
	s.Equal(zapcore.DebugLevel, moduleLevel([]string{"Router"}))
}

func (s *ModuleLevelTestSuite) TestModuleOverridesGlobal() {
	s.testEnv["LOG_LEVEL"] = "warn"
	s.testEnv["LOG_LEVEL__ROUTER"] = "debug"

	s.Equal(zapcore.DebugLevel, moduleLevel([]string{"Router"}))
	s.Equal(zapcore.WarnLevel, moduleLevel([]string{"Issuer"}))
}

func (s *ModuleLevelTestSuite) TestNestedModuleKey() {
	s.testEnv["LOG_LEVEL__ROUTER__METRICS"] = "error"

	s.Equal(zapcore.ErrorLevel, moduleLevel([]string{"Router", "Metrics"}))
	// parent chain falls back to default
	s.Equal(zapcore.InfoLevel, moduleLevel([]string{"Router"}))
}

func (s *ModuleLevelTestSuite) TestInvalidLevelIgnored() {
	s.testEnv["LOG_LEVEL"] = "chatty"
	s.Equal(zapcore.InfoLevel, moduleLevel([]string{"Router"}))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
		ok   bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{"Warn", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"nope", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
	}

	for _, tt := range tests {
		lv, ok := parseLevel(tt.in)
		if ok != tt.ok || lv != tt.want {
			t.Errorf("parseLevel(%q) = (%v, %v), want (%v, %v)", tt.in, lv, ok, tt.want, tt.ok)
		}
	}
}
