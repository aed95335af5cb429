package surround

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

// banner is a wrapper with a self-declared diagnostic name.
type banner struct{}

func (banner) ComponentName() string { return "Banner" }

func (banner) Render(
	ctx   context.Context,
	props Props,
) (any, error) {
	if props.Children == nil {
		return nil, nil
	}
	return props.Children(ctx)
}

type DescribeTestSuite struct {
	suite.Suite
}

func (suite *DescribeTestSuite) TestDescribe() {
	var order []string
	chain := New().
		Add(banner{}, Config{"text": "hi"}).
		Add(&recorder{"a", &order})

	info := chain.Describe()
	suite.Equal(chain.ID(), info.ID)
	suite.Len(info.Entries, 2)
	suite.Equal("Banner", info.Entries[0].Component)
	suite.Equal(Config{"text": "hi"}, info.Entries[0].Config)
	suite.Equal("surround.recorder", info.Entries[1].Component)
}

func (suite *DescribeTestSuite) TestEmpty() {
	info := New().Describe()
	suite.Empty(info.Entries)
	suite.NotEmpty(info.ID)
}

func (suite *DescribeTestSuite) TestMarshal() {
	chain := New().Add(banner{}, Config{"text": "hi"})
	data, err := MarshalDescription(chain.Describe())
	suite.Nil(err)
	js := string(data)
	suite.Contains(js, `"entries"`)
	suite.Contains(js, `"component":"Banner"`)
	suite.Contains(js, `"text":"hi"`)
}

func TestDescribeTestSuite(t *testing.T) {
	suite.Run(t, new(DescribeTestSuite))
}
