package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/idxboard/config"
	"github.com/guttosm/idxboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMock(t *testing.T) *mtest.T {
	t.Helper()
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// cursor builds a single-batch cursor reply holding docs.
func cursor(mt *mtest.T, docs ...bson.D) bson.D {
	ns := mt.DB.Name() + "." + mt.Coll.Name()
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, docs...)
}

func commandError() bson.D {
	return mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"})
}

func TestMongoStore_LazyAndShared(t *testing.T) {
	opened := 0
	open := func(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
		opened++
		return mongo.NewClient()
	}
	s := NewMongoStore(config.MongoConfig{Database: "idx"}, open)
	if opened != 0 {
		t.Fatalf("store must not connect before first use")
	}

	c1, err := s.Client(context.Background())
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	c2, _ := s.Client(context.Background())
	if c1 != c2 || opened != 1 {
		t.Fatalf("expected one shared client, opened=%d", opened)
	}

	db, err := s.Database(context.Background(), "")
	if err != nil || db.Name() != "idx" {
		t.Fatalf("default database: %v %v", db, err)
	}
	coll, err := s.Collection(context.Background(), "T3", "BERITA_IQPLUS")
	if err != nil || coll.Database().Name() != "T3" || coll.Name() != "BERITA_IQPLUS" {
		t.Fatalf("collection: %v %v", coll, err)
	}
}

func TestMongoStore_FailedOpenIsNotCached(t *testing.T) {
	calls := 0
	open := func(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("unreachable")
		}
		return mongo.NewClient()
	}
	s := NewMongoStore(config.MongoConfig{Database: "idx"}, open)

	if _, err := s.Collection(context.Background(), "", "yfinance"); err == nil {
		t.Fatalf("expected first connect to fail")
	}
	if _, err := s.Collection(context.Background(), "", "yfinance"); err != nil {
		t.Fatalf("expected second connect to succeed: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls=%d", calls)
	}
}

func TestMongoStore_NoOpener(t *testing.T) {
	s := NewMongoStore(config.MongoConfig{}, nil)
	if err := s.Ping(context.Background()); err == nil {
		t.Fatalf("expected error without opener")
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("close without client: %v", err)
	}
}

func TestPriceRepository_Snapshot(t *testing.T) {
	mt := newMock(t)

	mt.Run("groups", func(mt *mtest.T) {
		mt.AddMockResponses(cursor(mt,
			bson.D{{Key: "_id", Value: "AALI"}, {Key: "ticker", Value: "AALI"}, {Key: "Open", Value: 100.0}, {Key: "Close", Value: 110.0}, {Key: "Volume", Value: int64(10)}},
			bson.D{{Key: "_id", Value: "BBCA"}, {Key: "ticker", Value: "BBCA"}, {Key: "Open", Value: 0.0}, {Key: "Close", Value: 9.0}, {Key: "Volume", Value: int64(3)}},
		))
		repo := NewPriceRepository(NewMongoStoreWithClient(mt.Client, mt.DB.Name()), "")

		docs, err := repo.Snapshot(context.Background(), mt.Coll.Name(), "")
		if err != nil {
			mt.Fatalf("snapshot: %v", err)
		}
		if len(docs) != 2 || docs[0]["ticker"] != "AALI" || docs[1]["Close"] != 9.0 {
			mt.Fatalf("unexpected docs: %v", docs)
		}

		started := mt.GetStartedEvent()
		if started == nil || started.CommandName != "aggregate" {
			mt.Fatalf("expected aggregate command, got %+v", started)
		}
	})

	mt.Run("filters by ticker and orders", func(mt *mtest.T) {
		mt.AddMockResponses(cursor(mt))
		repo := NewPriceRepository(NewMongoStoreWithClient(mt.Client, mt.DB.Name()), "Date")

		docs, err := repo.Snapshot(context.Background(), mt.Coll.Name(), "AALI")
		if err != nil || len(docs) != 0 {
			mt.Fatalf("docs=%v err=%v", docs, err)
		}

		pipeline, ok := mt.GetStartedEvent().Command.Lookup("pipeline").ArrayOK()
		if !ok {
			mt.Fatalf("pipeline missing")
		}
		stages, _ := pipeline.Values()
		if len(stages) != 4 {
			mt.Fatalf("expected match, sort, group, sort stages; got %d", len(stages))
		}
		if _, err := stages[0].Document().LookupErr("$match"); err != nil {
			mt.Fatalf("first stage is not $match: %v", stages[0])
		}
		if _, err := stages[1].Document().LookupErr("$sort", "Date"); err != nil {
			mt.Fatalf("second stage is not $sort on Date: %v", stages[1])
		}
	})

	mt.Run("error", func(mt *mtest.T) {
		mt.AddMockResponses(commandError())
		repo := NewPriceRepository(NewMongoStoreWithClient(mt.Client, mt.DB.Name()), "")
		if _, err := repo.Snapshot(context.Background(), mt.Coll.Name(), ""); err == nil {
			mt.Fatalf("expected error")
		}
	})
}

func TestPriceRepository_ChartBuckets(t *testing.T) {
	mt := newMock(t)

	cases := []struct {
		g       models.Granularity
		keyPath []string
	}{
		{models.Daily, []string{"date"}},
		{models.Monthly, []string{"month"}},
		{models.Annually, []string{"year"}},
	}
	for _, tc := range cases {
		mt.Run(string(tc.g), func(mt *mtest.T) {
			mt.AddMockResponses(cursor(mt,
				bson.D{{Key: "_id", Value: bson.D{{Key: "year", Value: int32(2024)}}}, {Key: "value", Value: 12.5}},
			))
			repo := NewPriceRepository(NewMongoStoreWithClient(mt.Client, mt.DB.Name()), "")

			docs, err := repo.ChartBuckets(context.Background(), mt.Coll.Name(), tc.g, "AALI")
			if err != nil || len(docs) != 1 || docs[0]["value"] != 12.5 {
				mt.Fatalf("docs=%v err=%v", docs, err)
			}

			pipeline, _ := mt.GetStartedEvent().Command.Lookup("pipeline").ArrayOK()
			stages, _ := pipeline.Values()
			if len(stages) != 3 {
				mt.Fatalf("expected match, group, sort stages; got %d", len(stages))
			}
			path := append([]string{"$group", "_id"}, tc.keyPath...)
			if _, err := stages[1].Document().LookupErr(path...); err != nil {
				mt.Fatalf("group key for %s lacks %v: %v", tc.g, tc.keyPath, stages[1])
			}
		})
	}
}

func TestFinancialRepository_FindByIssuer(t *testing.T) {
	mt := newMock(t)

	mt.Run("found", func(mt *mtest.T) {
		mt.AddMockResponses(cursor(mt, bson.D{{Key: "emitten", Value: "AALI"}, {Key: "year", Value: int32(2024)}, {Key: "Revenue", Value: int32(1000)}}))
		repo := NewFinancialRepository(NewMongoStoreWithClient(mt.Client, mt.DB.Name()))

		doc, err := repo.FindByIssuer(context.Background(), mt.Coll.Name(), "AALI")
		if err != nil || doc == nil || doc["emitten"] != "AALI" {
			mt.Fatalf("doc=%v err=%v", doc, err)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(cursor(mt))
		repo := NewFinancialRepository(NewMongoStoreWithClient(mt.Client, mt.DB.Name()))

		doc, err := repo.FindByIssuer(context.Background(), mt.Coll.Name(), "UNKNOWN")
		if err != nil || doc != nil {
			mt.Fatalf("want nil,nil got doc=%v err=%v", doc, err)
		}
	})

	mt.Run("error", func(mt *mtest.T) {
		mt.AddMockResponses(commandError())
		repo := NewFinancialRepository(NewMongoStoreWithClient(mt.Client, mt.DB.Name()))

		if _, err := repo.FindByIssuer(context.Background(), mt.Coll.Name(), "AALI"); err == nil {
			mt.Fatalf("expected error")
		}
	})
}

func TestNewsRepository_Latest(t *testing.T) {
	mt := newMock(t)

	mt.Run("projection sort limit", func(mt *mtest.T) {
		mt.AddMockResponses(cursor(mt,
			bson.D{{Key: "judul", Value: "b"}},
			bson.D{{Key: "judul", Value: "a"}},
		))
		repo := NewNewsRepository(NewMongoStoreWithClient(mt.Client, mt.DB.Name()), mt.DB.Name(), mt.Coll.Name(), models.NewsIQPlus)

		docs, err := repo.Latest(context.Background(), 20)
		if err != nil || len(docs) != 2 || docs[0]["judul"] != "b" {
			mt.Fatalf("docs=%v err=%v", docs, err)
		}
		if repo.Variant() != models.NewsIQPlus {
			mt.Fatalf("variant=%q", repo.Variant())
		}

		cmd := mt.GetStartedEvent().Command
		if limit, ok := cmd.Lookup("limit").AsInt64OK(); !ok || limit != 20 {
			mt.Fatalf("limit=%v", cmd.Lookup("limit"))
		}
		if dir, ok := cmd.Lookup("sort", "_id").AsInt64OK(); !ok || dir != -1 {
			mt.Fatalf("sort=%v", cmd.Lookup("sort"))
		}
		if _, err := cmd.LookupErr("projection", "tanggal"); err != nil {
			mt.Fatalf("projection=%v", cmd.Lookup("projection"))
		}
	})

	mt.Run("headline projection", func(mt *mtest.T) {
		mt.AddMockResponses(cursor(mt))
		repo := NewNewsRepository(NewMongoStoreWithClient(mt.Client, mt.DB.Name()), mt.DB.Name(), mt.Coll.Name(), models.NewsHeadline)

		docs, err := repo.Latest(context.Background(), 20)
		if err != nil || len(docs) != 0 {
			mt.Fatalf("docs=%v err=%v", docs, err)
		}
		if _, err := mt.GetStartedEvent().Command.LookupErr("projection", "content"); err != nil {
			mt.Fatalf("headline projection lacks content")
		}
	})

	mt.Run("error", func(mt *mtest.T) {
		mt.AddMockResponses(commandError())
		repo := NewNewsRepository(NewMongoStoreWithClient(mt.Client, mt.DB.Name()), mt.DB.Name(), mt.Coll.Name(), models.NewsIQPlus)
		if _, err := repo.Latest(context.Background(), 20); err == nil {
			mt.Fatalf("expected error")
		}
	})
}
