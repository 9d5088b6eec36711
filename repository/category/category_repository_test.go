package category

import (
	"context"
	"testing"

	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/repository"
	"github.com/muhammadheryan/verified-commerce/repository/sqlstore/sqlstoretest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSQL_Lifecycle(t *testing.T) {
	repo := NewCategoryRepository(sqlstoretest.NewDB(t))
	ctx := context.Background()

	phones, err := repo.Create(ctx, &model.CategoryEntity{Name: "Phones", Image: "uploads/categories/a.png"})
	require.NoError(t, err)
	laptops, err := repo.Create(ctx, &model.CategoryEntity{Name: "Laptops", Image: "uploads/categories/b.png"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.CategoryEntity{Name: "Phones", Image: "uploads/categories/c.png"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	got, err := repo.Get(ctx, &model.CategoryFilter{ID: phones.ID})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "uploads/categories/a.png", got.Image)

	phones.Image = "uploads/categories/d.png"
	_, err = repo.Update(ctx, phones)
	require.NoError(t, err)
	got, err = repo.Get(ctx, &model.CategoryFilter{ID: phones.ID})
	require.NoError(t, err)
	assert.Equal(t, "uploads/categories/d.png", got.Image)

	_, err = repo.Update(ctx, &model.CategoryEntity{ID: "missing", Name: "X", Image: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	deleted, err := repo.Delete(ctx, laptops.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptops", deleted.Name)

	_, err = repo.Delete(ctx, laptops.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQL_ListFilters(t *testing.T) {
	repo := NewCategoryRepository(sqlstoretest.NewDB(t))
	ctx := context.Background()

	names := []string{"Smart Phones", "Phone Cases", "Laptops", "100% Cotton"}
	ids := map[string]string{}
	for _, n := range names {
		c, err := repo.Create(ctx, &model.CategoryEntity{Name: n, Image: "img"})
		require.NoError(t, err)
		ids[n] = c.ID
	}

	tests := []struct {
		name   string
		filter *model.CategoryFilter
		want   []string
	}{
		{name: "no filter", filter: nil, want: names},
		{name: "substring ignores case", filter: &model.CategoryFilter{Name: "PHONE"}, want: []string{"Smart Phones", "Phone Cases"}},
		{name: "wildcards are literal", filter: &model.CategoryFilter{Name: "0%"}, want: []string{"100% Cotton"}},
		{name: "underscore is literal", filter: &model.CategoryFilter{Name: "_"}, want: []string{}},
		{name: "by id", filter: &model.CategoryFilter{ID: ids["Laptops"]}, want: []string{"Laptops"}},
		{name: "by ids", filter: &model.CategoryFilter{IDs: []string{ids["Laptops"], ids["Phone Cases"]}}, want: []string{"Laptops", "Phone Cases"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			got := make([]string, 0, len(list))
			for _, c := range list {
				got = append(got, c.Name)
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestCategoryFilter(t *testing.T) {
	got := categoryFilter(&model.CategoryFilter{ID: "1", Name: "a.b"})
	assert.Equal(t, bson.D{
		{Key: "_id", Value: "1"},
		{Key: "name", Value: bson.D{{Key: "$regex", Value: `a\.b`}, {Key: "$options", Value: "i"}}},
	}, got)
}
