package idgen_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-equipment/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-equipment/internal/pkg/idgen"
)

func TestPrefixedGenerator(t *testing.T) {
	at := time.Unix(1700000000, 42)
	g := idgen.NewPrefixedWithClock("eq", &clock.Fixed{At: at})

	first := g.Generate()
	second := g.Generate()

	pattern := regexp.MustCompile(fmt.Sprintf(`^eq_%d_[0-9a-f]{8}$`, at.UnixNano()))
	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("eq")
	assert.Equal(t, "eq_1", g.Generate())
	assert.Equal(t, "eq_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
