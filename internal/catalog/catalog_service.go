package catalog

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sort"

	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/apperror"
	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/response"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type PageQuery struct {
	Collection string
	SortField  string
	SortOrder  string
	Page       int
	PageSize   int
	Filters    map[string]string
}

type ListQuery struct {
	Collection string
	SortField  string
	SortOrder  string
}

type Service interface {
	GetPage(ctx context.Context, q PageQuery) (response.Page, error)
	GetAll(ctx context.Context, q ListQuery) ([]bson.M, error)
}

var errQueryFailed = apperror.New(
	apperror.CodePersistence,
	"Could not query records",
	http.StatusInternalServerError,
)

type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}
	return &service{repo: repo, sf: &singleflight.Group{}, logger: l}
}

// buildFilter turns the free-form query params into case-insensitive
// substring matches. Values are quoted so user input can never inject
// regex syntax.
func buildFilter(filters map[string]string) bson.M {
	filter := bson.M{}
	for key, value := range filters {
		if value == "" {
			continue
		}
		filter[key] = bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
	}
	return filter
}

// resolveSortField falls back to ID and then _id when the requested
// field is absent from the collection's documents.
func resolveSortField(sample bson.M, requested string) string {
	if sample == nil {
		return requested
	}
	if _, ok := sample[requested]; ok {
		return requested
	}
	if _, ok := sample["ID"]; ok {
		return "ID"
	}
	return "_id"
}

func sortDoc(field, order string) bson.D {
	dir := 1
	if order == "desc" {
		dir = -1
	}
	return bson.D{{Key: field, Value: dir}}
}

func (s *service) GetPage(ctx context.Context, q PageQuery) (response.Page, error) {
	if q.Collection == "" {
		return response.Page{}, apperror.RequiredField("dataType")
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 30
	}

	// identical concurrent queries collapse into one round trip
	key := pageKey(q)
	result, err, _ := s.sf.Do(key, func() (any, error) {
		return s.fetchPage(ctx, q)
	})
	if err != nil {
		return response.Page{}, err
	}
	return result.(response.Page), nil
}

func (s *service) fetchPage(ctx context.Context, q PageQuery) (response.Page, error) {
	sample, err := s.repo.SampleOne(ctx, q.Collection)
	if err != nil {
		s.logger.Error("sample collection failed", zap.String("collection", q.Collection), zap.Error(err))
		return response.Page{}, errQueryFailed
	}

	filter := buildFilter(q.Filters)
	sortBy := sortDoc(resolveSortField(sample, q.SortField), q.SortOrder)

	total, err := s.repo.Count(ctx, q.Collection, filter)
	if err != nil {
		s.logger.Error("count failed", zap.String("collection", q.Collection), zap.Error(err))
		return response.Page{}, errQueryFailed
	}

	skip := int64(q.Page-1) * int64(q.PageSize)
	docs, err := s.repo.Find(ctx, q.Collection, filter, sortBy, skip, int64(q.PageSize))
	if err != nil {
		s.logger.Error("find failed", zap.String("collection", q.Collection), zap.Error(err))
		return response.Page{}, errQueryFailed
	}

	return response.NewPage(docs, total, q.Page, q.PageSize), nil
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]bson.M, error) {
	if q.Collection == "" {
		return nil, apperror.RequiredField("dataType")
	}

	sample, err := s.repo.SampleOne(ctx, q.Collection)
	if err != nil {
		s.logger.Error("sample collection failed", zap.String("collection", q.Collection), zap.Error(err))
		return nil, errQueryFailed
	}

	sortBy := sortDoc(resolveSortField(sample, q.SortField), q.SortOrder)
	docs, err := s.repo.Find(ctx, q.Collection, bson.M{}, sortBy, 0, 0)
	if err != nil {
		s.logger.Error("find failed", zap.String("collection", q.Collection), zap.Error(err))
		return nil, errQueryFailed
	}
	return docs, nil
}

func pageKey(q PageQuery) string {
	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	key := fmt.Sprintf("%s|%s|%s|%d|%d", q.Collection, q.SortField, q.SortOrder, q.Page, q.PageSize)
	for _, k := range keys {
		key += "|" + k + "=" + q.Filters[k]
	}
	return key
}
