package milvus

import (
	"context"
	"net"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/Aleph-Alpha/milvus-go/v1/milvus/milvuspb"
)

// fakeMilvusServer is an in-memory MilvusServiceServer used to exercise the
// client over a real gRPC transport.
type fakeMilvusServer struct {
	milvuspb.UnimplementedMilvusServiceServer

	mu      sync.Mutex
	tables  map[string]*milvuspb.TableSchema
	rows    map[string][]fakeRow
	indexes map[string]*milvuspb.Index
	nextID  int64
	calls   map[string]int
	version string

	// failStatus, when set, is returned as the status of every reply.
	failStatus *milvuspb.Status
	// failErr, when set, fails every RPC at the transport level.
	failErr error

	lastInsert *milvuspb.InsertParam
	lastSearch *milvuspb.SearchParam
	lastDelete *milvuspb.DeleteByRangeParam
}

type fakeRow struct {
	id  int64
	vec []float32
}

func newFakeMilvusServer() *fakeMilvusServer {
	return &fakeMilvusServer{
		tables:  make(map[string]*milvuspb.TableSchema),
		rows:    make(map[string][]fakeRow),
		indexes: make(map[string]*milvuspb.Index),
		nextID:  1,
		calls:   make(map[string]int),
		version: "0.5.3",
	}
}

func okStatus() *milvuspb.Status {
	return &milvuspb.Status{ErrorCode: int32(StatusSuccess)}
}

func notExistsStatus() *milvuspb.Status {
	return &milvuspb.Status{ErrorCode: int32(StatusTableNotExists), Reason: "table not found"}
}

// gate records the call and returns the scripted failure, if any. Callers
// must hold f.mu.
func (f *fakeMilvusServer) gate(name string) (*milvuspb.Status, error) {
	f.calls[name]++
	if f.failErr != nil {
		return nil, f.failErr
	}
	if f.failStatus != nil {
		return f.failStatus, nil
	}
	return nil, nil
}

func (f *fakeMilvusServer) setFailStatus(s *milvuspb.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failStatus = s
}

func (f *fakeMilvusServer) setFailErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failErr = err
}

func (f *fakeMilvusServer) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeMilvusServer) recordedInsert() *milvuspb.InsertParam {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastInsert
}

func (f *fakeMilvusServer) recordedSearch() *milvuspb.SearchParam {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSearch
}

func (f *fakeMilvusServer) recordedDelete() *milvuspb.DeleteByRangeParam {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastDelete
}

func (f *fakeMilvusServer) CreateTable(ctx context.Context, in *milvuspb.TableSchema) (*milvuspb.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("CreateTable"); err != nil {
		return nil, err
	} else if s != nil {
		return s, nil
	}
	if _, ok := f.tables[in.TableName]; ok {
		return &milvuspb.Status{ErrorCode: int32(StatusIllegalTableName), Reason: "table already exists"}, nil
	}
	f.tables[in.TableName] = in
	return okStatus(), nil
}

func (f *fakeMilvusServer) HasTable(ctx context.Context, in *milvuspb.TableName) (*milvuspb.BoolReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("HasTable"); err != nil {
		return nil, err
	} else if s != nil {
		return &milvuspb.BoolReply{Status: s}, nil
	}
	_, ok := f.tables[in.TableName]
	return &milvuspb.BoolReply{Status: okStatus(), BoolReply: ok}, nil
}

func (f *fakeMilvusServer) DropTable(ctx context.Context, in *milvuspb.TableName) (*milvuspb.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("DropTable"); err != nil {
		return nil, err
	} else if s != nil {
		return s, nil
	}
	if _, ok := f.tables[in.TableName]; !ok {
		return notExistsStatus(), nil
	}
	delete(f.tables, in.TableName)
	delete(f.rows, in.TableName)
	delete(f.indexes, in.TableName)
	return okStatus(), nil
}

func (f *fakeMilvusServer) DescribeTable(ctx context.Context, in *milvuspb.TableName) (*milvuspb.TableSchema, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("DescribeTable"); err != nil {
		return nil, err
	} else if s != nil {
		return &milvuspb.TableSchema{Status: s}, nil
	}
	schema, ok := f.tables[in.TableName]
	if !ok {
		return &milvuspb.TableSchema{Status: notExistsStatus()}, nil
	}
	return &milvuspb.TableSchema{
		Status:        okStatus(),
		TableName:     schema.TableName,
		Dimension:     schema.Dimension,
		IndexFileSize: schema.IndexFileSize,
		MetricType:    schema.MetricType,
	}, nil
}

func (f *fakeMilvusServer) ShowTables(ctx context.Context, in *milvuspb.Command) (*milvuspb.TableNameList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("ShowTables"); err != nil {
		return nil, err
	} else if s != nil {
		return &milvuspb.TableNameList{Status: s}, nil
	}
	names := make([]string, 0, len(f.tables))
	for name := range f.tables {
		names = append(names, name)
	}
	return &milvuspb.TableNameList{Status: okStatus(), TableNames: names}, nil
}

func (f *fakeMilvusServer) CountTable(ctx context.Context, in *milvuspb.TableName) (*milvuspb.TableRowCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("CountTable"); err != nil {
		return nil, err
	} else if s != nil {
		return &milvuspb.TableRowCount{Status: s}, nil
	}
	if _, ok := f.tables[in.TableName]; !ok {
		return &milvuspb.TableRowCount{Status: notExistsStatus()}, nil
	}
	return &milvuspb.TableRowCount{Status: okStatus(), TableRowCount: int64(len(f.rows[in.TableName]))}, nil
}

func (f *fakeMilvusServer) PreloadTable(ctx context.Context, in *milvuspb.TableName) (*milvuspb.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("PreloadTable"); err != nil {
		return nil, err
	} else if s != nil {
		return s, nil
	}
	if _, ok := f.tables[in.TableName]; !ok {
		return notExistsStatus(), nil
	}
	return okStatus(), nil
}

func (f *fakeMilvusServer) CreateIndex(ctx context.Context, in *milvuspb.IndexParam) (*milvuspb.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("CreateIndex"); err != nil {
		return nil, err
	} else if s != nil {
		return s, nil
	}
	if _, ok := f.tables[in.TableName]; !ok {
		return notExistsStatus(), nil
	}
	f.indexes[in.TableName] = in.Index
	return okStatus(), nil
}

func (f *fakeMilvusServer) DescribeIndex(ctx context.Context, in *milvuspb.TableName) (*milvuspb.IndexParam, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("DescribeIndex"); err != nil {
		return nil, err
	} else if s != nil {
		return &milvuspb.IndexParam{Status: s}, nil
	}
	if _, ok := f.tables[in.TableName]; !ok {
		return &milvuspb.IndexParam{Status: notExistsStatus()}, nil
	}
	idx := f.indexes[in.TableName]
	if idx == nil {
		idx = &milvuspb.Index{IndexType: int32(IndexFlat), Nlist: DefaultNList}
	}
	return &milvuspb.IndexParam{Status: okStatus(), TableName: in.TableName, Index: idx}, nil
}

func (f *fakeMilvusServer) DropIndex(ctx context.Context, in *milvuspb.TableName) (*milvuspb.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("DropIndex"); err != nil {
		return nil, err
	} else if s != nil {
		return s, nil
	}
	if _, ok := f.tables[in.TableName]; !ok {
		return notExistsStatus(), nil
	}
	delete(f.indexes, in.TableName)
	return okStatus(), nil
}

func (f *fakeMilvusServer) Insert(ctx context.Context, in *milvuspb.InsertParam) (*milvuspb.VectorIds, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("Insert"); err != nil {
		return nil, err
	} else if s != nil {
		return &milvuspb.VectorIds{Status: s}, nil
	}
	f.lastInsert = in
	if _, ok := f.tables[in.TableName]; !ok {
		return &milvuspb.VectorIds{Status: notExistsStatus()}, nil
	}

	ids := in.RowIdArray
	if len(ids) == 0 {
		for range in.RowRecordArray {
			ids = append(ids, f.nextID)
			f.nextID++
		}
	}
	for i, rec := range in.RowRecordArray {
		f.rows[in.TableName] = append(f.rows[in.TableName], fakeRow{id: ids[i], vec: rec.VectorData})
	}
	return &milvuspb.VectorIds{Status: okStatus(), VectorIdArray: ids}, nil
}

func (f *fakeMilvusServer) Search(ctx context.Context, in *milvuspb.SearchParam) (*milvuspb.TopKQueryResultList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("Search"); err != nil {
		return nil, err
	} else if s != nil {
		return &milvuspb.TopKQueryResultList{Status: s}, nil
	}
	f.lastSearch = in

	rows := f.rows[in.TableName]
	lists := make([]*milvuspb.TopKQueryResult, 0, len(in.QueryRecordArray))
	for _, query := range in.QueryRecordArray {
		type scored struct {
			id   int64
			dist float64
		}
		ranked := make([]scored, 0, len(rows))
		for _, row := range rows {
			ranked = append(ranked, scored{id: row.id, dist: squaredL2(query.VectorData, row.vec)})
		}
		sort.Slice(ranked, func(i, j int) bool { return ranked[i].dist < ranked[j].dist })

		k := int(in.Topk)
		if k > len(ranked) {
			k = len(ranked)
		}
		list := &milvuspb.TopKQueryResult{}
		for _, hit := range ranked[:k] {
			list.QueryResultArrays = append(list.QueryResultArrays, &milvuspb.QueryResult{Id: hit.id, Distance: hit.dist})
		}
		lists = append(lists, list)
	}
	return &milvuspb.TopKQueryResultList{Status: okStatus(), TopkQueryResult: lists}, nil
}

func (f *fakeMilvusServer) SearchInFiles(ctx context.Context, in *milvuspb.SearchInFilesParam) (*milvuspb.TopKQueryResultList, error) {
	f.mu.Lock()
	f.calls["SearchInFiles"]++
	f.mu.Unlock()
	return f.Search(ctx, in.SearchParam)
}

func (f *fakeMilvusServer) DeleteByRange(ctx context.Context, in *milvuspb.DeleteByRangeParam) (*milvuspb.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("DeleteByRange"); err != nil {
		return nil, err
	} else if s != nil {
		return s, nil
	}
	f.lastDelete = in
	if _, ok := f.tables[in.TableName]; !ok {
		return notExistsStatus(), nil
	}
	f.rows[in.TableName] = nil
	return okStatus(), nil
}

func (f *fakeMilvusServer) Cmd(ctx context.Context, in *milvuspb.Command) (*milvuspb.StringReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, err := f.gate("Cmd"); err != nil {
		return nil, err
	} else if s != nil {
		return &milvuspb.StringReply{Status: s}, nil
	}
	reply := "OK"
	if in.Cmd == cmdServerVersion {
		reply = f.version
	}
	return &milvuspb.StringReply{Status: okStatus(), StringReply: reply}, nil
}

func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		if i >= len(b) {
			break
		}
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

// startFakeServer starts an in-memory gRPC server and returns a connected
// client backed by it.
func startFakeServer(t *testing.T) (*fakeMilvusServer, *GrpcClient) {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	fake := newFakeMilvusServer()
	milvuspb.RegisterMilvusServiceServer(server, fake)

	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	client := NewClient(&Config{
		StatePollInterval: time.Millisecond,
		ConnectTimeout:    5 * time.Second,
	})
	client.dial = func(target string, opts ...grpc.DialOption) (channel, milvuspb.MilvusServiceClient, error) {
		opts = append(opts, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
		conn, err := grpc.NewClient("passthrough:///bufnet", opts...)
		if err != nil {
			return nil, nil, err
		}
		return conn, milvuspb.NewMilvusServiceClient(conn), nil
	}

	require.NoError(t, client.Connect(context.Background(), ConnectParam{}))
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	return fake, client
}

func TestTableLifecycle(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "documents", Dimension: 128}))

	exists, err := client.HasTable(ctx, "documents")
	require.NoError(t, err)
	assert.True(t, exists)

	schema, err := client.DescribeTable(ctx, "documents")
	require.NoError(t, err)
	assert.Equal(t, "documents", schema.TableName)
	assert.Equal(t, int64(128), schema.Dimension)
	assert.Equal(t, DefaultIndexFileSize, schema.IndexFileSize)
	assert.Equal(t, MetricL2, schema.MetricType)

	require.NoError(t, client.DropTable(ctx, "documents"))

	exists, err = client.HasTable(ctx, "documents")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateTableDuplicate(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	schema := TableSchema{TableName: "documents", Dimension: 16}
	require.NoError(t, client.CreateTable(ctx, schema))

	err := client.CreateTable(ctx, schema)
	var mErr *Error
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, StatusIllegalTableName, mErr.Code)
	assert.Equal(t, "table already exists", mErr.Reason)
}

func TestDescribeMissingTable(t *testing.T) {
	_, client := startFakeServer(t)

	_, err := client.DescribeTable(context.Background(), "missing")
	var mErr *Error
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, StatusTableNotExists, mErr.Code)
	assert.Equal(t, "table not found", mErr.Reason)
}

func TestShowTables(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "alpha", Dimension: 4}))
	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "beta", Dimension: 4}))

	names, err := client.ShowTables(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)
}

func TestInsertAndCount(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "documents", Dimension: 2}))

	t.Run("server-assigned IDs", func(t *testing.T) {
		ids, err := client.Insert(ctx, InsertParam{
			TableName: "documents",
			Vectors:   [][]float32{{1, 2}, {3, 4}, {5, 6}},
		})
		require.NoError(t, err)
		require.Len(t, ids, 3)

		count, err := client.CountTable(ctx, "documents")
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("caller-assigned IDs echoed back", func(t *testing.T) {
		ids, err := client.Insert(ctx, InsertParam{
			TableName: "documents",
			Vectors:   [][]float32{{7, 8}},
			IDs:       []int64{42},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{42}, ids)
	})
}

func TestInsertPreservesRowOrder(t *testing.T) {
	fake, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "documents", Dimension: 2}))

	vectors := [][]float32{{0, 1}, {2, 3}, {4, 5}}
	_, err := client.Insert(ctx, InsertParam{TableName: "documents", Vectors: vectors})
	require.NoError(t, err)

	sent := fake.recordedInsert()
	require.NotNil(t, sent)
	require.Len(t, sent.RowRecordArray, len(vectors))
	for i, rec := range sent.RowRecordArray {
		assert.Equal(t, vectors[i], rec.VectorData)
	}
}

func TestSearchReturnsRankedListsPerQuery(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "vectors", Dimension: 2}))
	_, err := client.Insert(ctx, InsertParam{
		TableName: "vectors",
		Vectors:   [][]float32{{0, 0}, {10, 10}, {0, 1}, {10, 11}},
		IDs:       []int64{1, 2, 3, 4},
	})
	require.NoError(t, err)

	results, err := client.Search(ctx, SearchParam{
		TableName:    "vectors",
		QueryVectors: [][]float32{{0, 0}, {10, 10}, {0, 1}},
		TopK:         2,
		NProbe:       16,
	})
	require.NoError(t, err)

	// One list per query vector, in query order, ranked by distance.
	require.Len(t, results, 3)
	for _, list := range results {
		require.Len(t, list, 2)
		assert.LessOrEqual(t, list[0].Distance, list[1].Distance)
	}
	assert.Equal(t, int64(1), results[0][0].ID)
	assert.Equal(t, int64(2), results[1][0].ID)
	assert.Equal(t, int64(3), results[2][0].ID)
}

func TestSearchTopKLargerThanTable(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "vectors", Dimension: 2}))
	_, err := client.Insert(ctx, InsertParam{
		TableName: "vectors",
		Vectors:   [][]float32{{0, 0}, {1, 1}},
	})
	require.NoError(t, err)

	results, err := client.Search(ctx, SearchParam{
		TableName:    "vectors",
		QueryVectors: [][]float32{{0, 0}},
		TopK:         10,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results[0], 2)
}

func TestSearchSendsDateRanges(t *testing.T) {
	fake, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "vectors", Dimension: 2}))

	_, err := client.Search(ctx, SearchParam{
		TableName:    "vectors",
		QueryVectors: [][]float32{{0, 0}},
		Ranges: []Range{{
			Start: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2020, time.December, 31, 23, 59, 59, 0, time.UTC),
		}},
		TopK: 1,
	})
	require.NoError(t, err)

	sent := fake.recordedSearch()
	require.NotNil(t, sent)
	require.Len(t, sent.QueryRangeArray, 1)
	assert.Equal(t, "2020-01-01", sent.QueryRangeArray[0].StartValue)
	assert.Equal(t, "2020-12-31", sent.QueryRangeArray[0].EndValue)
}

func TestSearchInFiles(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "vectors", Dimension: 2}))
	_, err := client.Insert(ctx, InsertParam{
		TableName: "vectors",
		Vectors:   [][]float32{{0, 0}, {1, 1}, {2, 2}},
	})
	require.NoError(t, err)

	results, err := client.SearchInFiles(ctx, SearchInFilesParam{
		FileIDs: []string{"1", "2"},
		SearchParam: SearchParam{
			TableName:    "vectors",
			QueryVectors: [][]float32{{0, 0}},
			TopK:         3,
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results[0], 3)
}

func TestIndexLifecycle(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "vectors", Dimension: 2}))
	require.NoError(t, client.CreateIndex(ctx, IndexParam{
		TableName: "vectors",
		Index:     Index{Type: IndexIVFFlat, NList: 4096},
	}))

	idx, err := client.DescribeIndex(ctx, "vectors")
	require.NoError(t, err)
	assert.Equal(t, IndexIVFFlat, idx.Type)
	assert.Equal(t, int64(4096), idx.NList)

	require.NoError(t, client.DropIndex(ctx, "vectors"))

	// After dropping, the table falls back to a flat index.
	idx, err = client.DescribeIndex(ctx, "vectors")
	require.NoError(t, err)
	assert.Equal(t, IndexFlat, idx.Type)
	assert.Equal(t, DefaultNList, idx.NList)
}

func TestCreateIndexDefaults(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "vectors", Dimension: 2}))
	require.NoError(t, client.CreateIndex(ctx, IndexParam{TableName: "vectors"}))

	idx, err := client.DescribeIndex(ctx, "vectors")
	require.NoError(t, err)
	assert.Equal(t, IndexFlat, idx.Type)
	assert.Equal(t, DefaultNList, idx.NList)
}

func TestDeleteByRange(t *testing.T) {
	fake, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "vectors", Dimension: 2}))
	_, err := client.Insert(ctx, InsertParam{
		TableName: "vectors",
		Vectors:   [][]float32{{0, 0}, {1, 1}, {2, 2}},
	})
	require.NoError(t, err)

	require.NoError(t, client.DeleteByRange(ctx, "vectors", Range{
		Start: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2020, time.June, 30, 0, 0, 0, 0, time.UTC),
	}))

	count, err := client.CountTable(ctx, "vectors")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	sent := fake.recordedDelete()
	require.NotNil(t, sent)
	assert.Equal(t, "vectors", sent.TableName)
	require.NotNil(t, sent.Range)
	assert.Equal(t, "2020-01-01", sent.Range.StartValue)
	assert.Equal(t, "2020-06-30", sent.Range.EndValue)
}

func TestPreloadTable(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "vectors", Dimension: 2}))
	require.NoError(t, client.PreloadTable(ctx, "vectors"))

	err := client.PreloadTable(ctx, "missing")
	var mErr *Error
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, StatusTableNotExists, mErr.Code)
}

func TestServerCommands(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	statusReply, err := client.ServerStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OK", statusReply)

	version, err := client.ServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.5.3", version)
}

func TestServerStatusPassthrough(t *testing.T) {
	fake, client := startFakeServer(t)
	ctx := context.Background()

	t.Run("known code and reason verbatim", func(t *testing.T) {
		fake.setFailStatus(&milvuspb.Status{
			ErrorCode: int32(StatusMetaFailed),
			Reason:    "meta service unavailable",
		})

		err := client.DropTable(ctx, "whatever")
		var mErr *Error
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, StatusMetaFailed, mErr.Code)
		assert.Equal(t, "meta service unavailable", mErr.Reason)
	})

	t.Run("unknown code passes through verbatim", func(t *testing.T) {
		fake.setFailStatus(&milvuspb.Status{ErrorCode: 999, Reason: "from the future"})

		err := client.DropTable(ctx, "whatever")
		var mErr *Error
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, StatusCode(999), mErr.Code)
		assert.Equal(t, "from the future", mErr.Reason)
		assert.Equal(t, "StatusCode(999)", mErr.Code.String())
	})
}

func TestTransportFaultSurfacedAsRPCError(t *testing.T) {
	fake, client := startFakeServer(t)

	fake.setFailErr(status.Error(codes.Internal, "backend exploded"))

	_, err := client.ShowTables(context.Background())
	require.ErrorIs(t, err, ErrRPC)

	var mErr *Error
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, StatusRPCError, mErr.Code)
	assert.NotEmpty(t, mErr.Reason)
	assert.Contains(t, mErr.Reason, "backend exploded")
}

func TestOperationsWhenNotConnected(t *testing.T) {
	client := NewClient(nil)
	ctx := context.Background()

	checks := []struct {
		name string
		call func(t *testing.T) error
	}{
		{"CreateTable", func(t *testing.T) error {
			return client.CreateTable(ctx, TableSchema{TableName: "t", Dimension: 2})
		}},
		{"HasTable", func(t *testing.T) error {
			exists, err := client.HasTable(ctx, "t")
			assert.False(t, exists)
			return err
		}},
		{"DropTable", func(t *testing.T) error {
			return client.DropTable(ctx, "t")
		}},
		{"DescribeTable", func(t *testing.T) error {
			schema, err := client.DescribeTable(ctx, "t")
			assert.Zero(t, schema)
			return err
		}},
		{"ShowTables", func(t *testing.T) error {
			names, err := client.ShowTables(ctx)
			assert.Nil(t, names)
			return err
		}},
		{"CountTable", func(t *testing.T) error {
			count, err := client.CountTable(ctx, "t")
			assert.Zero(t, count)
			return err
		}},
		{"PreloadTable", func(t *testing.T) error {
			return client.PreloadTable(ctx, "t")
		}},
		{"CreateIndex", func(t *testing.T) error {
			return client.CreateIndex(ctx, IndexParam{TableName: "t"})
		}},
		{"DescribeIndex", func(t *testing.T) error {
			idx, err := client.DescribeIndex(ctx, "t")
			assert.Zero(t, idx)
			return err
		}},
		{"DropIndex", func(t *testing.T) error {
			return client.DropIndex(ctx, "t")
		}},
		{"Insert", func(t *testing.T) error {
			ids, err := client.Insert(ctx, InsertParam{TableName: "t", Vectors: [][]float32{{1, 2}}})
			assert.Nil(t, ids)
			return err
		}},
		{"Search", func(t *testing.T) error {
			results, err := client.Search(ctx, SearchParam{TableName: "t", QueryVectors: [][]float32{{1, 2}}, TopK: 1})
			assert.Nil(t, results)
			return err
		}},
		{"SearchInFiles", func(t *testing.T) error {
			results, err := client.SearchInFiles(ctx, SearchInFilesParam{
				FileIDs:     []string{"1"},
				SearchParam: SearchParam{TableName: "t", QueryVectors: [][]float32{{1, 2}}, TopK: 1},
			})
			assert.Nil(t, results)
			return err
		}},
		{"DeleteByRange", func(t *testing.T) error {
			return client.DeleteByRange(ctx, "t", Range{})
		}},
		{"ServerStatus", func(t *testing.T) error {
			reply, err := client.ServerStatus(ctx)
			assert.Empty(t, reply)
			return err
		}},
		{"ServerVersion", func(t *testing.T) error {
			reply, err := client.ServerVersion(ctx)
			assert.Empty(t, reply)
			return err
		}},
	}

	for _, tc := range checks {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call(t)
			require.ErrorIs(t, err, ErrNotConnected)
			assert.Equal(t, StatusClientNotConnected, StatusCodeOf(err))
		})
	}
}

func TestDisconnectedClientMakesNoCalls(t *testing.T) {
	fake, client := startFakeServer(t)

	require.NoError(t, client.Disconnect(context.Background()))
	before := fake.totalCalls()

	_, err := client.ShowTables(context.Background())
	require.ErrorIs(t, err, ErrNotConnected)
	assert.Equal(t, before, fake.totalCalls())
}

func TestOperationsNotifyObserver(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	obs := &TestObserver{}
	client.WithObserver(obs)

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "observed", Dimension: 2}))

	ops := obs.GetOperations()
	require.NotEmpty(t, ops)
	last := ops[len(ops)-1]
	assert.Equal(t, "milvus", last.Component)
	assert.Equal(t, "CreateTable", last.Operation)
	assert.Equal(t, "observed", last.Resource)
	assert.NoError(t, last.Error)
	assert.Greater(t, last.Duration, time.Duration(0))
}

func TestConcurrentOperations(t *testing.T) {
	_, client := startFakeServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateTable(ctx, TableSchema{TableName: "concurrent", Dimension: 2}))

	const workers = 8
	const perWorker = 10

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := 0; j < perWorker; j++ {
				if _, err := client.Insert(gctx, InsertParam{
					TableName: "concurrent",
					Vectors:   [][]float32{{1, 2}},
				}); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	count, err := client.CountTable(ctx, "concurrent")
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), count)
}
