package api

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/store"
)

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newSeededStore 预置一份小数据集：江门一条白色粉末在途、广州一条深黄色粉末在途
func newSeededStore() *store.MemoryStore {
	st := store.NewMemoryStore(model.DefaultSettings())
	st.SetDataset(&model.Dataset{
		ID:           "ds-test",
		ImportedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		StockFile:    "库存.xlsx",
		TrackingFile: "跟踪.xlsx",
		Keyword:      "江门",
		Stock: []model.StockRecord{
			{RowNo: 2, CategoryText: "white powder", ActualQty: 100, RecordedQty: 120},
		},
		Tracking: []model.TrackingRecord{
			{
				RowNo:             2,
				ShipDate:          testDate(2024, 3, 1),
				ETAPort:           testDate(2024, 3, 5),
				ReceiveAddress:    "江门仓",
				WarehouseCustomer: "江门仓库",
				ProductText:       "20 tons white powder",
				Carrier:           "MSK",
			},
			{
				RowNo:             3,
				ShipDate:          testDate(2024, 3, 3),
				ETADest:           testDate(2024, 3, 12),
				ReceiveAddress:    "广州仓",
				WarehouseCustomer: "客户B",
				ProductText:       "10 tons dark yellow powder",
				Carrier:           "COSCO",
			},
		},
	})
	return st
}

func newTestRouter(t *testing.T, st *store.MemoryStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(st, t.TempDir())
	r := gin.New()
	api := r.Group("/api")
	h.RegisterRoutes(api)
	return r
}

func TestBuildDownloadContentDisposition(t *testing.T) {
	t.Parallel()

	got := buildDownloadContentDisposition("stock-summary-2024-03-10.xlsx", "汇总(产品)_截止20240310.xlsx")
	want := "attachment; filename=\"stock-summary-2024-03-10.xlsx\"; filename*=UTF-8''%E6%B1%87%E6%80%BB%28%E4%BA%A7%E5%93%81%29_%E6%88%AA%E6%AD%A220240310.xlsx"
	if got != want {
		t.Fatalf("content-disposition mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestDownloadStoreExpiry(t *testing.T) {
	t.Parallel()

	s := newExportDownloadStore()
	token := s.put(exportDownload{filePath: "/tmp/a.xlsx"}, -time.Second)
	if _, ok := s.get(token); ok {
		t.Fatal("过期条目仍可取出")
	}

	token = s.put(exportDownload{filePath: "/tmp/b.xlsx"}, time.Minute)
	if _, ok := s.get(token); !ok {
		t.Fatal("有效条目取不出来")
	}
	s.delete(token)
	if _, ok := s.get(token); ok {
		t.Fatal("删除后仍可取出")
	}
}
