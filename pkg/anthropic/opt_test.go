package anthropic

import (
	"testing"

	// Packages
	opt "github.com/mutablelogic/go-claude/pkg/opt"
	schema "github.com/mutablelogic/go-claude/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_opt_001(t *testing.T) {
	assert := assert.New(t)
	o, err := opt.Apply(WithMaxTokens(1024), WithTemperature(1.0), WithTopK(3), WithTopP(0.25))
	assert.NoError(err)
	assert.Equal(uint64(1024), o.GetUint(opt.MaxTokensKey))
	assert.Equal(1.0, o.GetFloat64(opt.TemperatureKey))
	assert.Equal(uint64(3), o.GetUint(opt.TopKKey))
	assert.Equal(0.25, o.GetFloat64(opt.TopPKey))
}

func Test_opt_002(t *testing.T) {
	// Unset values are nil
	assert := assert.New(t)
	o, err := opt.Apply()
	assert.NoError(err)
	assert.Nil(optUint(o, opt.MaxTokensKey))
	assert.Nil(optFloat64(o, opt.TemperatureKey))
	assert.Nil(optBool(o, opt.TruncationKey))
	assert.Nil(optMetadata(o))
}

func Test_opt_003(t *testing.T) {
	assert := assert.New(t)
	o, err := opt.Apply(WithMaxTokens(5), WithTemperature(0), WithTruncation(false), WithUser("u"))
	assert.NoError(err)
	if v := optUint(o, opt.MaxTokensKey); assert.NotNil(v) {
		assert.Equal(uint64(5), *v)
	}
	if v := optFloat64(o, opt.TemperatureKey); assert.NotNil(v) {
		assert.Equal(0.0, *v)
	}
	if v := optBool(o, opt.TruncationKey); assert.NotNil(v) {
		assert.False(*v)
	}
	assert.Equal(&requestMetadata{UserId: "u"}, optMetadata(o))
}

func Test_opt_004(t *testing.T) {
	// Tool choice options replace each other
	assert := assert.New(t)
	o, err := opt.Apply(WithToolChoice("get_weather"))
	assert.NoError(err)
	assert.Equal("tool", o.GetString(opt.ToolChoiceKey))
	assert.Equal("get_weather", o.GetString(opt.ToolChoiceNameKey))

	o, err = opt.Apply(WithToolChoice("get_weather"), WithToolChoiceNone())
	assert.NoError(err)
	assert.Equal("none", o.GetString(opt.ToolChoiceKey))
	assert.False(o.Has(opt.ToolChoiceNameKey))
}

func Test_opt_005(t *testing.T) {
	assert := assert.New(t)
	def, err := schema.ToolFor[struct {
		Query string `json:"query"`
	}]("search", "Search the web")
	if !assert.NoError(err) {
		t.FailNow()
	}
	o, err := opt.Apply(WithTools(def, def))
	assert.NoError(err)
	assert.Len(o.GetStringArray(opt.ToolsKey), 2)
}
