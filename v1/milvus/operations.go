package milvus

import (
	"context"
	"time"

	grpcstatus "google.golang.org/grpc/status"

	"github.com/Aleph-Alpha/milvus-go/v1/milvus/milvuspb"
)

//
// ──────────────────────────────────────────────────────────────
//   OPERATIONS
// ──────────────────────────────────────────────────────────────
//
// Every operation follows the same shape: gate on the connection, build
// the wire request, perform exactly one synchronous RPC, and interpret
// the outcome through the shared helpers below. A disconnected client
// returns ErrNotConnected without touching the transport.
//

// Server command strings understood by the Cmd RPC.
const (
	cmdServerStatus  = "OK"
	cmdServerVersion = "version"
)

// statusErr interprets the status block of a reply. A successful status
// yields nil. Any other code is surfaced as an Error carrying the code and
// reason exactly as the server sent them.
func statusErr(s *milvuspb.Status) error {
	if s == nil {
		return newError(StatusUnknown, "reply carried no status", nil)
	}
	if StatusCode(s.ErrorCode) == StatusSuccess {
		return nil
	}
	return newError(StatusCode(s.ErrorCode), s.Reason, nil)
}

// rpcError wraps a transport-level failure. The reason is taken from the
// gRPC status message and is never empty.
func rpcError(operation string, err error) error {
	reason := "rpc failed"
	if s, ok := grpcstatus.FromError(err); ok && s.Message() != "" {
		reason = s.Message()
	} else if err != nil && err.Error() != "" {
		reason = err.Error()
	}
	return newError(StatusRPCError, operation+": "+reason, err)
}

// ── Table Management ────────────────────────────────────────────────

// CreateTable creates a table with the given schema.
//
// Zero values in the schema fall back to the package defaults (see
// TableSchema). The table name and dimension must be set by the caller.
func (c *GrpcClient) CreateTable(ctx context.Context, schema TableSchema) error {
	start := time.Now()

	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.Status
		reply, err = stub.CreateTable(ctx, buildTableSchema(schema))
		if err != nil {
			err = rpcError("CreateTable", err)
		} else {
			err = statusErr(reply)
		}
	}

	c.observeOperation("CreateTable", schema.TableName, "", time.Since(start), err, 0, map[string]interface{}{
		"dimension": schema.Dimension,
	})
	if err != nil {
		c.logError(ctx, "CreateTable failed", err, map[string]interface{}{"table": schema.TableName})
		return err
	}

	c.logDebug(ctx, "Created table", map[string]interface{}{"table": schema.TableName})
	return nil
}

// HasTable reports whether a table with the given name exists.
func (c *GrpcClient) HasTable(ctx context.Context, tableName string) (bool, error) {
	start := time.Now()

	var exists bool
	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.BoolReply
		reply, err = stub.HasTable(ctx, &milvuspb.TableName{TableName: tableName})
		switch {
		case err != nil:
			err = rpcError("HasTable", err)
		case reply == nil:
			err = newError(StatusUnknown, "reply carried no status", nil)
		default:
			if err = statusErr(reply.Status); err == nil {
				exists = reply.BoolReply
			}
		}
	}

	c.observeOperation("HasTable", tableName, "", time.Since(start), err, 0, nil)
	if err != nil {
		c.logError(ctx, "HasTable failed", err, map[string]interface{}{"table": tableName})
		return false, err
	}

	return exists, nil
}

// DropTable removes the table and all vectors stored in it.
func (c *GrpcClient) DropTable(ctx context.Context, tableName string) error {
	start := time.Now()

	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.Status
		reply, err = stub.DropTable(ctx, &milvuspb.TableName{TableName: tableName})
		if err != nil {
			err = rpcError("DropTable", err)
		} else {
			err = statusErr(reply)
		}
	}

	c.observeOperation("DropTable", tableName, "", time.Since(start), err, 0, nil)
	if err != nil {
		c.logError(ctx, "DropTable failed", err, map[string]interface{}{"table": tableName})
		return err
	}

	c.logDebug(ctx, "Dropped table", map[string]interface{}{"table": tableName})
	return nil
}

// DescribeTable returns the schema of the table.
func (c *GrpcClient) DescribeTable(ctx context.Context, tableName string) (TableSchema, error) {
	start := time.Now()

	var schema TableSchema
	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.TableSchema
		reply, err = stub.DescribeTable(ctx, &milvuspb.TableName{TableName: tableName})
		switch {
		case err != nil:
			err = rpcError("DescribeTable", err)
		case reply == nil:
			err = newError(StatusUnknown, "reply carried no status", nil)
		default:
			if err = statusErr(reply.Status); err == nil {
				schema = parseTableSchema(reply)
			}
		}
	}

	c.observeOperation("DescribeTable", tableName, "", time.Since(start), err, 0, nil)
	if err != nil {
		c.logError(ctx, "DescribeTable failed", err, map[string]interface{}{"table": tableName})
		return TableSchema{}, err
	}

	return schema, nil
}

// ShowTables lists the names of all tables on the server.
func (c *GrpcClient) ShowTables(ctx context.Context) ([]string, error) {
	start := time.Now()

	var names []string
	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.TableNameList
		reply, err = stub.ShowTables(ctx, &milvuspb.Command{})
		switch {
		case err != nil:
			err = rpcError("ShowTables", err)
		case reply == nil:
			err = newError(StatusUnknown, "reply carried no status", nil)
		default:
			if err = statusErr(reply.Status); err == nil {
				names = reply.TableNames
			}
		}
	}

	c.observeOperation("ShowTables", "", "", time.Since(start), err, int64(len(names)), nil)
	if err != nil {
		c.logError(ctx, "ShowTables failed", err, nil)
		return nil, err
	}

	return names, nil
}

// CountTable returns the number of vectors currently stored in the table.
func (c *GrpcClient) CountTable(ctx context.Context, tableName string) (int64, error) {
	start := time.Now()

	var count int64
	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.TableRowCount
		reply, err = stub.CountTable(ctx, &milvuspb.TableName{TableName: tableName})
		switch {
		case err != nil:
			err = rpcError("CountTable", err)
		case reply == nil:
			err = newError(StatusUnknown, "reply carried no status", nil)
		default:
			if err = statusErr(reply.Status); err == nil {
				count = reply.TableRowCount
			}
		}
	}

	c.observeOperation("CountTable", tableName, "", time.Since(start), err, count, nil)
	if err != nil {
		c.logError(ctx, "CountTable failed", err, map[string]interface{}{"table": tableName})
		return 0, err
	}

	return count, nil
}

// PreloadTable asks the server to load the table into memory ahead of
// queries. The call returns once the server has accepted the request.
func (c *GrpcClient) PreloadTable(ctx context.Context, tableName string) error {
	start := time.Now()

	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.Status
		reply, err = stub.PreloadTable(ctx, &milvuspb.TableName{TableName: tableName})
		if err != nil {
			err = rpcError("PreloadTable", err)
		} else {
			err = statusErr(reply)
		}
	}

	c.observeOperation("PreloadTable", tableName, "", time.Since(start), err, 0, nil)
	if err != nil {
		c.logError(ctx, "PreloadTable failed", err, map[string]interface{}{"table": tableName})
		return err
	}

	return nil
}

// ── Index Management ────────────────────────────────────────────────

// CreateIndex builds an index on the table. Zero values in param.Index fall
// back to the package defaults (see Index).
//
// Index construction happens server-side and this call blocks until the
// server reports completion, which can take a while for large tables. Use
// ctx to bound the wait.
func (c *GrpcClient) CreateIndex(ctx context.Context, param IndexParam) error {
	start := time.Now()

	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.Status
		reply, err = stub.CreateIndex(ctx, buildIndexParam(param))
		if err != nil {
			err = rpcError("CreateIndex", err)
		} else {
			err = statusErr(reply)
		}
	}

	c.observeOperation("CreateIndex", param.TableName, param.Index.Type.String(), time.Since(start), err, 0, nil)
	if err != nil {
		c.logError(ctx, "CreateIndex failed", err, map[string]interface{}{"table": param.TableName})
		return err
	}

	c.logDebug(ctx, "Created index", map[string]interface{}{
		"table": param.TableName,
		"type":  param.Index.Type.String(),
	})
	return nil
}

// DescribeIndex returns the index configured on the table.
func (c *GrpcClient) DescribeIndex(ctx context.Context, tableName string) (Index, error) {
	start := time.Now()

	var index Index
	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.IndexParam
		reply, err = stub.DescribeIndex(ctx, &milvuspb.TableName{TableName: tableName})
		switch {
		case err != nil:
			err = rpcError("DescribeIndex", err)
		case reply == nil:
			err = newError(StatusUnknown, "reply carried no status", nil)
		default:
			if err = statusErr(reply.Status); err == nil {
				index = parseIndex(reply)
			}
		}
	}

	c.observeOperation("DescribeIndex", tableName, "", time.Since(start), err, 0, nil)
	if err != nil {
		c.logError(ctx, "DescribeIndex failed", err, map[string]interface{}{"table": tableName})
		return Index{}, err
	}

	return index, nil
}

// DropIndex removes the index from the table, reverting it to flat scans.
func (c *GrpcClient) DropIndex(ctx context.Context, tableName string) error {
	start := time.Now()

	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.Status
		reply, err = stub.DropIndex(ctx, &milvuspb.TableName{TableName: tableName})
		if err != nil {
			err = rpcError("DropIndex", err)
		} else {
			err = statusErr(reply)
		}
	}

	c.observeOperation("DropIndex", tableName, "", time.Since(start), err, 0, nil)
	if err != nil {
		c.logError(ctx, "DropIndex failed", err, map[string]interface{}{"table": tableName})
		return err
	}

	return nil
}

// ── Vector Operations ───────────────────────────────────────────────

// Insert stores the vectors of param in the table and returns the ID
// assigned to each row, in the same order as param.Vectors.
//
// When param.IDs is set the server stores the rows under those IDs and
// echoes them back; mixing assigned and server-generated IDs in one call is
// not supported by the server.
func (c *GrpcClient) Insert(ctx context.Context, param InsertParam) ([]int64, error) {
	start := time.Now()

	var ids []int64
	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.VectorIds
		reply, err = stub.Insert(ctx, buildInsertParam(param))
		switch {
		case err != nil:
			err = rpcError("Insert", err)
		case reply == nil:
			err = newError(StatusUnknown, "reply carried no status", nil)
		default:
			if err = statusErr(reply.Status); err == nil {
				ids = reply.VectorIdArray
			}
		}
	}

	c.observeOperation("Insert", param.TableName, "", time.Since(start), err, int64(len(param.Vectors)), nil)
	if err != nil {
		c.logError(ctx, "Insert failed", err, map[string]interface{}{
			"table": param.TableName,
			"rows":  len(param.Vectors),
		})
		return nil, err
	}

	c.logDebug(ctx, "Inserted vectors", map[string]interface{}{
		"table": param.TableName,
		"rows":  len(ids),
	})
	return ids, nil
}

// Search runs an approximate nearest neighbour query for every vector in
// param.QueryVectors and returns one ranked result list per query vector,
// in query order.
//
// Result lists hold at most param.TopK entries and can be shorter when the
// table contains fewer vectors. When param.Ranges is set, only vectors
// inserted on the named calendar dates are searched.
func (c *GrpcClient) Search(ctx context.Context, param SearchParam) ([][]QueryResult, error) {
	start := time.Now()

	var results [][]QueryResult
	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.TopKQueryResultList
		reply, err = stub.Search(ctx, buildSearchParam(param))
		switch {
		case err != nil:
			err = rpcError("Search", err)
		case reply == nil:
			err = newError(StatusUnknown, "reply carried no status", nil)
		default:
			if err = statusErr(reply.Status); err == nil {
				results = parseSearchResults(reply)
			}
		}
	}

	c.observeOperation("Search", param.TableName, "", time.Since(start), err, int64(len(param.QueryVectors)), map[string]interface{}{
		"top_k": param.TopK,
	})
	if err != nil {
		c.logError(ctx, "Search failed", err, map[string]interface{}{
			"table":   param.TableName,
			"queries": len(param.QueryVectors),
		})
		return nil, err
	}

	return results, nil
}

// SearchInFiles behaves like Search but restricts the query to the given
// segment files of the table. The file IDs come from server-side tooling.
func (c *GrpcClient) SearchInFiles(ctx context.Context, param SearchInFilesParam) ([][]QueryResult, error) {
	start := time.Now()

	var results [][]QueryResult
	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.TopKQueryResultList
		reply, err = stub.SearchInFiles(ctx, buildSearchInFilesParam(param))
		switch {
		case err != nil:
			err = rpcError("SearchInFiles", err)
		case reply == nil:
			err = newError(StatusUnknown, "reply carried no status", nil)
		default:
			if err = statusErr(reply.Status); err == nil {
				results = parseSearchResults(reply)
			}
		}
	}

	c.observeOperation("SearchInFiles", param.TableName, "", time.Since(start), err, int64(len(param.QueryVectors)), map[string]interface{}{
		"files": len(param.FileIDs),
		"top_k": param.TopK,
	})
	if err != nil {
		c.logError(ctx, "SearchInFiles failed", err, map[string]interface{}{
			"table": param.TableName,
			"files": len(param.FileIDs),
		})
		return nil, err
	}

	return results, nil
}

// DeleteByRange removes the vectors inserted into the table within the
// calendar date range r. Only the date part of the bounds is sent to the
// server; see Range.
func (c *GrpcClient) DeleteByRange(ctx context.Context, tableName string, r Range) error {
	start := time.Now()

	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.Status
		reply, err = stub.DeleteByRange(ctx, buildDeleteByRangeParam(tableName, r))
		if err != nil {
			err = rpcError("DeleteByRange", err)
		} else {
			err = statusErr(reply)
		}
	}

	c.observeOperation("DeleteByRange", tableName, "", time.Since(start), err, 0, nil)
	if err != nil {
		c.logError(ctx, "DeleteByRange failed", err, map[string]interface{}{"table": tableName})
		return err
	}

	return nil
}

// ── Server Commands ─────────────────────────────────────────────────

// command runs a server command and returns the reply string.
func (c *GrpcClient) command(ctx context.Context, cmd string) (string, error) {
	start := time.Now()

	var value string
	stub, err := c.connection()
	if err == nil {
		var reply *milvuspb.StringReply
		reply, err = stub.Cmd(ctx, &milvuspb.Command{Cmd: cmd})
		switch {
		case err != nil:
			err = rpcError("Cmd", err)
		case reply == nil:
			err = newError(StatusUnknown, "reply carried no status", nil)
		default:
			if err = statusErr(reply.Status); err == nil {
				value = reply.StringReply
			}
		}
	}

	c.observeOperation("Cmd", "", cmd, time.Since(start), err, 0, nil)
	if err != nil {
		c.logError(ctx, "Cmd failed", err, map[string]interface{}{"cmd": cmd})
		return "", err
	}

	return value, nil
}

// ServerStatus returns the server's liveness reply, typically "OK".
func (c *GrpcClient) ServerStatus(ctx context.Context) (string, error) {
	return c.command(ctx, cmdServerStatus)
}

// ServerVersion returns the server's version string.
func (c *GrpcClient) ServerVersion(ctx context.Context) (string, error) {
	return c.command(ctx, cmdServerVersion)
}
