package milvus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/milvus-go/v1/milvus/milvuspb"
)

func TestBuildTableSchemaDefaults(t *testing.T) {
	out := buildTableSchema(TableSchema{TableName: "documents", Dimension: 128})

	assert.Equal(t, "documents", out.TableName)
	assert.Equal(t, int64(128), out.Dimension)
	assert.Equal(t, DefaultIndexFileSize, out.IndexFileSize)
	assert.Equal(t, int32(MetricL2), out.MetricType)
}

func TestBuildTableSchemaExplicitValues(t *testing.T) {
	out := buildTableSchema(TableSchema{
		TableName:     "documents",
		Dimension:     64,
		IndexFileSize: 2048,
		MetricType:    MetricIP,
	})

	assert.Equal(t, int64(2048), out.IndexFileSize)
	assert.Equal(t, int32(MetricIP), out.MetricType)
}

func TestBuildRowRecordsPreservesOrder(t *testing.T) {
	vectors := [][]float32{{1, 2}, {3, 4}, {5, 6}}

	out := buildRowRecords(vectors)

	require.Len(t, out, 3)
	for i, rec := range out {
		assert.Equal(t, vectors[i], rec.VectorData)
	}
}

func TestBuildRangesFormatsCalendarDates(t *testing.T) {
	t.Run("midnight bounds", func(t *testing.T) {
		out := buildRanges([]Range{{
			Start: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC),
		}})

		require.Len(t, out, 1)
		assert.Equal(t, "2020-01-01", out[0].StartValue)
		assert.Equal(t, "2020-12-31", out[0].EndValue)
	})

	t.Run("time of day is dropped", func(t *testing.T) {
		out := buildRanges([]Range{{
			Start: time.Date(2020, time.June, 15, 23, 59, 59, 0, time.UTC),
			End:   time.Date(2020, time.June, 16, 0, 0, 1, 0, time.UTC),
		}})

		require.Len(t, out, 1)
		assert.Equal(t, "2020-06-15", out[0].StartValue)
		assert.Equal(t, "2020-06-16", out[0].EndValue)
	})

	t.Run("no ranges yields nil", func(t *testing.T) {
		assert.Nil(t, buildRanges(nil))
		assert.Nil(t, buildRanges([]Range{}))
	})
}

func TestBuildSearchParam(t *testing.T) {
	out := buildSearchParam(SearchParam{
		TableName:    "vectors",
		QueryVectors: [][]float32{{0, 1}, {2, 3}},
		TopK:         5,
		NProbe:       32,
	})

	assert.Equal(t, "vectors", out.TableName)
	assert.Len(t, out.QueryRecordArray, 2)
	assert.Nil(t, out.QueryRangeArray)
	assert.Equal(t, int64(5), out.Topk)
	assert.Equal(t, int64(32), out.Nprobe)
}

func TestBuildSearchInFilesParam(t *testing.T) {
	out := buildSearchInFilesParam(SearchInFilesParam{
		FileIDs: []string{"7", "8"},
		SearchParam: SearchParam{
			TableName:    "vectors",
			QueryVectors: [][]float32{{0, 1}},
			TopK:         3,
		},
	})

	assert.Equal(t, []string{"7", "8"}, out.FileIdArray)
	require.NotNil(t, out.SearchParam)
	assert.Equal(t, "vectors", out.SearchParam.TableName)
	assert.Equal(t, int64(3), out.SearchParam.Topk)
}

func TestBuildIndexParamDefaults(t *testing.T) {
	out := buildIndexParam(IndexParam{TableName: "vectors"})

	assert.Equal(t, "vectors", out.TableName)
	require.NotNil(t, out.Index)
	assert.Equal(t, int32(IndexFlat), out.Index.IndexType)
	assert.Equal(t, DefaultNList, out.Index.Nlist)
}

func TestBuildIndexParamExplicitValues(t *testing.T) {
	out := buildIndexParam(IndexParam{
		TableName: "vectors",
		Index:     Index{Type: IndexIVFSQ8, NList: 2048},
	})

	require.NotNil(t, out.Index)
	assert.Equal(t, int32(IndexIVFSQ8), out.Index.IndexType)
	assert.Equal(t, int64(2048), out.Index.Nlist)
}

func TestBuildDeleteByRangeParam(t *testing.T) {
	out := buildDeleteByRangeParam("vectors", Range{
		Start: time.Date(2019, time.March, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2019, time.April, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "vectors", out.TableName)
	require.NotNil(t, out.Range)
	assert.Equal(t, "2019-03-05", out.Range.StartValue)
	assert.Equal(t, "2019-04-01", out.Range.EndValue)
}

func TestParseTableSchema(t *testing.T) {
	t.Run("nil reply yields zero schema", func(t *testing.T) {
		assert.Zero(t, parseTableSchema(nil))
	})

	t.Run("fields mapped", func(t *testing.T) {
		out := parseTableSchema(&milvuspb.TableSchema{
			TableName:     "documents",
			Dimension:     256,
			IndexFileSize: 1024,
			MetricType:    int32(MetricIP),
		})

		assert.Equal(t, "documents", out.TableName)
		assert.Equal(t, int64(256), out.Dimension)
		assert.Equal(t, int64(1024), out.IndexFileSize)
		assert.Equal(t, MetricIP, out.MetricType)
	})
}

func TestParseIndex(t *testing.T) {
	t.Run("nil reply yields zero index", func(t *testing.T) {
		assert.Zero(t, parseIndex(nil))
	})

	t.Run("nil inner index yields zero index", func(t *testing.T) {
		assert.Zero(t, parseIndex(&milvuspb.IndexParam{TableName: "vectors"}))
	})

	t.Run("fields mapped", func(t *testing.T) {
		out := parseIndex(&milvuspb.IndexParam{
			TableName: "vectors",
			Index:     &milvuspb.Index{IndexType: int32(IndexIVFFlat), Nlist: 4096},
		})

		assert.Equal(t, IndexIVFFlat, out.Type)
		assert.Equal(t, int64(4096), out.NList)
	})
}

func TestParseSearchResults(t *testing.T) {
	t.Run("nil reply yields empty results", func(t *testing.T) {
		out := parseSearchResults(nil)
		require.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("empty reply yields empty results", func(t *testing.T) {
		out := parseSearchResults(&milvuspb.TopKQueryResultList{})
		require.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("one list per query in query order", func(t *testing.T) {
		out := parseSearchResults(&milvuspb.TopKQueryResultList{
			TopkQueryResult: []*milvuspb.TopKQueryResult{
				{QueryResultArrays: []*milvuspb.QueryResult{
					{Id: 1, Distance: 0.1},
					{Id: 2, Distance: 0.4},
				}},
				{QueryResultArrays: []*milvuspb.QueryResult{
					{Id: 9, Distance: 0.2},
				}},
			},
		})

		require.Len(t, out, 2)
		require.Len(t, out[0], 2)
		assert.Equal(t, QueryResult{ID: 1, Distance: 0.1}, out[0][0])
		assert.Equal(t, QueryResult{ID: 2, Distance: 0.4}, out[0][1])
		require.Len(t, out[1], 1)
		assert.Equal(t, QueryResult{ID: 9, Distance: 0.2}, out[1][0])
	})

	t.Run("empty per-query list stays in place", func(t *testing.T) {
		out := parseSearchResults(&milvuspb.TopKQueryResultList{
			TopkQueryResult: []*milvuspb.TopKQueryResult{
				{},
				{QueryResultArrays: []*milvuspb.QueryResult{{Id: 3, Distance: 1.5}}},
			},
		})

		require.Len(t, out, 2)
		assert.Empty(t, out[0])
		require.Len(t, out[1], 1)
	})

	t.Run("nil per-query entry becomes empty list", func(t *testing.T) {
		out := parseSearchResults(&milvuspb.TopKQueryResultList{
			TopkQueryResult: []*milvuspb.TopKQueryResult{nil},
		})

		require.Len(t, out, 1)
		assert.Empty(t, out[0])
	})
}
