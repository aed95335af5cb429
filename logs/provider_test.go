package logs_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/suite"
	"github.com/surround-go/surround"
	"github.com/surround-go/surround/logs"
)

type LogsTestSuite struct {
	suite.Suite
	lines []string
}

func (suite *LogsTestSuite) root(verbosity int) surround.Component {
	suite.lines = nil
	logger := funcr.New(func(prefix, args string) {
		suite.lines = append(suite.lines, prefix+" "+args)
	}, funcr.Options{Verbosity: verbosity})
	return logs.Provider(logger, logs.Named("app"), logs.Trace())
}

func (suite *LogsTestSuite) logged(fragment string) bool {
	for _, line := range suite.lines {
		if strings.Contains(line, fragment) {
			return true
		}
	}
	return false
}

func (suite *LogsTestSuite) TestAmbientLogger() {
	chain := surround.New().Add(suite.root(1))
	result, err := chain.Render(context.Background(), surround.Props{
		Children: func(ctx context.Context) (any, error) {
			logs.From(ctx).Info("hello")
			return "ok", nil
		},
	})
	suite.Nil(err)
	suite.Equal("ok", result)
	suite.True(suite.logged("hello"))
	suite.True(suite.logged("render begin"))
	suite.True(suite.logged("render end"))
	suite.True(suite.logged("app"))
}

func (suite *LogsTestSuite) TestRenderFailure() {
	boom := errors.New("boom")
	chain := surround.Compose(suite.root(0), surround.ComponentFunc(
		func(context.Context, surround.Props) (any, error) {
			return nil, boom
		}))
	_, err := chain.Render(context.Background(), surround.Props{})
	suite.Same(boom, err)
	suite.True(suite.logged("render failed"))
}

func (suite *LogsTestSuite) TestDiscardWithoutProvider() {
	logger := logs.From(context.Background())
	suite.False(logger.Enabled())
}

func TestLogsTestSuite(t *testing.T) {
	suite.Run(t, new(LogsTestSuite))
}
