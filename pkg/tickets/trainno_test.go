package tickets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTrainNo_Match(t *testing.T) {
	rows := []string{
		"x|预订|240000G27105|G27|VNP|AOH",
		"x|预订|5l0000D30170|D301|VNP|AOH",
	}

	trainNo, seen, found := ResolveTrainNo(rows, "D301")
	require.True(t, found)
	assert.Equal(t, "5l0000D30170", trainNo)
	assert.Nil(t, seen)
}

func TestResolveTrainNo_CaseInsensitiveAndTrimmed(t *testing.T) {
	rows := []string{"x|预订|240000G27105|G27|VNP|AOH"}

	trainNo, _, found := ResolveTrainNo(rows, "  g27 ")
	require.True(t, found)
	assert.Equal(t, "240000G27105", trainNo)
}

func TestResolveTrainNo_MissReportsSeenCodes(t *testing.T) {
	rows := []string{
		"x|预订|240000G27105|G27|VNP|AOH",
		"x|预订|240000G29107|G29|VNP|AOH",
		"x|预订|240000G27105|G27|VNP|AOH",
	}

	_, seen, found := ResolveTrainNo(rows, "K511")
	assert.False(t, found)
	assert.Equal(t, []string{"G27", "G29"}, seen)
}

func TestResolveTrainNo_SkipsRowsWithoutMarker(t *testing.T) {
	rows := []string{
		"x|y|240000G27105|G27|VNP|AOH",
		"x|预订",
		"x|预订|240000G27105",
	}

	_, seen, found := ResolveTrainNo(rows, "G27")
	assert.False(t, found)
	assert.Empty(t, seen)
}
