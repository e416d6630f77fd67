package stations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog([]StationRecord{
		{Name: "北京", Code: "BJP", Pinyin: "beijing", PinyinShort: "bj", City: "北京"},
		{Name: "北京南", Code: "VNP", Pinyin: "beijingnan", PinyinShort: "bjn", City: "北京"},
		{Name: "北京西", Code: "BXP", Pinyin: "beijingxi", PinyinShort: "bjx", City: "北京"},
		{Name: "上海", Code: "SHH", Pinyin: "shanghai", PinyinShort: "sh", City: "上海"},
		{Name: "上海虹桥", Code: "AOH", Pinyin: "shanghaihongqiao", PinyinShort: "shhq", City: "上海"},
	})
}

func TestNormaliseName(t *testing.T) {
	assert.Equal(t, "北京南", NormaliseName("北京南站"))
	assert.Equal(t, "北京南", NormaliseName(" 北京南站 "))
	assert.Equal(t, "北京", NormaliseName("北京"))

	// Two-rune names keep their suffix.
	assert.Equal(t, "东站", NormaliseName("东站"))
}

func TestByExactName_SuffixRoundTrip(t *testing.T) {
	catalog := testCatalog()

	withSuffix, foundSuffix := catalog.ByExactName("北京南站")
	bare, foundBare := catalog.ByExactName("北京南")

	require.True(t, foundSuffix)
	require.True(t, foundBare)
	assert.Equal(t, bare, withSuffix)
	assert.Equal(t, "VNP", bare.Code)
}

func TestByExactName_Miss(t *testing.T) {
	_, found := testCatalog().ByExactName("不存在")
	assert.False(t, found)
}

func TestByCode_CaseSensitive(t *testing.T) {
	catalog := testCatalog()

	record, found := catalog.ByCode("SHH")
	require.True(t, found)
	assert.Equal(t, "上海", record.Name)

	_, found = catalog.ByCode("shh")
	assert.False(t, found)
}

func TestSearch_ExactPrecedesFuzzy(t *testing.T) {
	catalog := testCatalog()

	results := catalog.Search("北京", 10)
	require.NotEmpty(t, results)

	// The exact name match leads, the substring matches follow.
	assert.Equal(t, "BJP", results[0].Code)
	assert.Len(t, results, 3)
}

func TestSearch_LimitNeverExceeded(t *testing.T) {
	catalog := testCatalog()

	for _, limit := range []int{1, 2, 3} {
		results := catalog.Search("北京", limit)
		assert.LessOrEqual(t, len(results), limit)
	}
}

func TestSearch_PinyinAndCity(t *testing.T) {
	catalog := testCatalog()

	results := catalog.Search("shhq", 5)
	require.Len(t, results, 1)
	assert.Equal(t, "AOH", results[0].Code)

	// A city name matches every station in that city.
	results = catalog.Search("上海", 10)
	assert.Len(t, results, 2)
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, testCatalog().Search("zzzzzz", 10))
}

func TestResolveCode(t *testing.T) {
	catalog := testCatalog()

	// Telecode shaped tokens pass through untouched, known or not.
	code, ok := catalog.ResolveCode("VNP")
	require.True(t, ok)
	assert.Equal(t, "VNP", code)

	code, ok = catalog.ResolveCode("QQQ")
	require.True(t, ok)
	assert.Equal(t, "QQQ", code)

	code, ok = catalog.ResolveCode("北京南站")
	require.True(t, ok)
	assert.Equal(t, "VNP", code)

	_, ok = catalog.ResolveCode("不存在")
	assert.False(t, ok)

	_, ok = catalog.ResolveCode("   ")
	assert.False(t, ok)
}

func TestResolveCode_Idempotent(t *testing.T) {
	catalog := testCatalog()

	code, ok := catalog.ResolveCode("上海虹桥")
	require.True(t, ok)

	again, ok := catalog.ResolveCode(code)
	require.True(t, ok)
	assert.Equal(t, code, again)
}

func TestStore_SwapIsAtomic(t *testing.T) {
	store := NewStore()
	assert.Equal(t, 0, store.Get().Len())

	store.Swap(testCatalog())
	assert.Equal(t, 5, store.Get().Len())

	_, found := store.Get().ByCode("BJP")
	assert.True(t, found)
}
