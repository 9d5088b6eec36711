package category_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appcategory "github.com/muhammadheryan/verified-commerce/application/category"
	"github.com/muhammadheryan/verified-commerce/constant"
	assetmocks "github.com/muhammadheryan/verified-commerce/mocks/application/asset"
	categorymocks "github.com/muhammadheryan/verified-commerce/mocks/repository/category"
	rabbitmqmocks "github.com/muhammadheryan/verified-commerce/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/repository"
	cerr "github.com/muhammadheryan/verified-commerce/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	categoryRepo *categorymocks.CategoryRepository
	assets       *assetmocks.Manager
	publisher    *rabbitmqmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		categoryRepo: categorymocks.NewCategoryRepository(t),
		assets:       assetmocks.NewManager(t),
		publisher:    rabbitmqmocks.NewEventPublisher(t),
	}
}

func (f fields) app() appcategory.CategoryApp {
	return appcategory.NewCategoryApp(f.categoryRepo, f.assets, f.publisher)
}

func checkErr(t *testing.T, err error, wantErr bool, errCode constant.ErrorType) bool {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("error = %v, wantErr %v", err, wantErr)
	}
	if !wantErr {
		return false
	}
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
	return true
}

func strPtr(s string) *string { return &s }

func TestCategoryApp_Create(t *testing.T) {
	image := &model.UploadFile{Filename: "phones.png", Size: 10}
	images := []*model.UploadFile{image}

	tests := []struct {
		name     string
		req      *model.CreateCategoryRequest
		image    *model.UploadFile
		mockCall func(f fields)
		want     *model.CategoryEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success",
			req:   &model.CreateCategoryRequest{Name: " Phones "},
			image: image,
			mockCall: func(f fields) {
				f.assets.On("Validate", images).Return(nil).Once()
				f.categoryRepo.
					On("List", mock.Anything, &model.CategoryFilter{Name: "Phones"}).
					Return([]model.CategoryEntity{{ID: "c9", Name: "Smart Phones"}}, nil).
					Once()
				f.assets.On("Save", mock.Anything, constant.FolderCategories, images).Return([]string{"uploads/categories/1-a.png"}, nil).Once()
				f.categoryRepo.
					On("Create", mock.Anything, &model.CategoryEntity{Name: "Phones", Image: "uploads/categories/1-a.png"}).
					Return(&model.CategoryEntity{ID: "c1", Name: "Phones", Image: "uploads/categories/1-a.png"}, nil).
					Once()
				f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: &model.CategoryEntity{ID: "c1", Name: "Phones", Image: "uploads/categories/1-a.png"},
		},
		{
			name:     "error: image missing persists nothing",
			req:      &model.CreateCategoryRequest{Name: "Phones"},
			image:    nil,
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrImageRequired,
		},
		{
			name:  "error: invalid file type",
			req:   &model.CreateCategoryRequest{Name: "Phones"},
			image: image,
			mockCall: func(f fields) {
				f.assets.On("Validate", images).Return(cerr.SetCustomError(constant.ErrInvalidFileType)).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidFileType,
		},
		{
			name:  "error: duplicate name checked before saving the file",
			req:   &model.CreateCategoryRequest{Name: "Phones"},
			image: image,
			mockCall: func(f fields) {
				f.assets.On("Validate", images).Return(nil).Once()
				f.categoryRepo.
					On("List", mock.Anything, &model.CategoryFilter{Name: "Phones"}).
					Return([]model.CategoryEntity{{ID: "c1", Name: "Phones"}}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicate,
		},
		{
			name:  "error: create failure releases the new file",
			req:   &model.CreateCategoryRequest{Name: "Phones"},
			image: image,
			mockCall: func(f fields) {
				f.assets.On("Validate", images).Return(nil).Once()
				f.categoryRepo.On("List", mock.Anything, mock.Anything).Return([]model.CategoryEntity{}, nil).Once()
				f.assets.On("Save", mock.Anything, constant.FolderCategories, images).Return([]string{"k1"}, nil).Once()
				f.categoryRepo.On("Create", mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicate).Once()
				f.assets.On("Release", mock.Anything, "k1").Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicate,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Create(context.Background(), tt.req, tt.image)
			if checkErr(t, err, tt.wantErr, tt.errCode) {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Create() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCategoryApp_Update(t *testing.T) {
	image := &model.UploadFile{Filename: "new.png", Size: 10}
	images := []*model.UploadFile{image}
	existing := func() *model.CategoryEntity {
		return &model.CategoryEntity{ID: "c1", Name: "Phones", Image: "uploads/categories/old.png"}
	}

	tests := []struct {
		name     string
		req      *model.UpdateCategoryRequest
		image    *model.UploadFile
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: new image saved before old one released",
			req:   &model.UpdateCategoryRequest{},
			image: image,
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{ID: "c1"}).Return(existing(), nil).Once()
				saved := f.assets.On("Save", mock.Anything, constant.FolderCategories, images).Return([]string{"uploads/categories/new.png"}, nil).Once()
				updated := f.categoryRepo.
					On("Update", mock.Anything, &model.CategoryEntity{ID: "c1", Name: "Phones", Image: "uploads/categories/new.png"}).
					Return(&model.CategoryEntity{ID: "c1", Name: "Phones", Image: "uploads/categories/new.png"}, nil).
					Once().
					NotBefore(saved)
				f.assets.On("Release", mock.Anything, "uploads/categories/old.png").Once().NotBefore(updated)
				f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "success: rename keeps the image",
			req:  &model.UpdateCategoryRequest{Name: strPtr("Mobiles")},
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{ID: "c1"}).Return(existing(), nil).Once()
				f.categoryRepo.On("List", mock.Anything, &model.CategoryFilter{Name: "Mobiles"}).Return([]model.CategoryEntity{}, nil).Once()
				f.categoryRepo.
					On("Update", mock.Anything, &model.CategoryEntity{ID: "c1", Name: "Mobiles", Image: "uploads/categories/old.png"}).
					Return(&model.CategoryEntity{ID: "c1", Name: "Mobiles", Image: "uploads/categories/old.png"}, nil).
					Once()
				f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "error: not found",
			req:   &model.UpdateCategoryRequest{},
			image: image,
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{ID: "c1"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:  "error: update failure keeps the old file and drops the new one",
			req:   &model.UpdateCategoryRequest{},
			image: image,
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{ID: "c1"}).Return(existing(), nil).Once()
				f.assets.On("Save", mock.Anything, constant.FolderCategories, images).Return([]string{"uploads/categories/new.png"}, nil).Once()
				f.categoryRepo.On("Update", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
				f.assets.On("Release", mock.Anything, "uploads/categories/new.png").Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: rename to taken name",
			req:  &model.UpdateCategoryRequest{Name: strPtr("Laptops")},
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{ID: "c1"}).Return(existing(), nil).Once()
				f.categoryRepo.
					On("List", mock.Anything, &model.CategoryFilter{Name: "Laptops"}).
					Return([]model.CategoryEntity{{ID: "c2", Name: "Laptops"}}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicate,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			_, err := f.app().Update(context.Background(), "c1", tt.req, tt.image)
			checkErr(t, err, tt.wantErr, tt.errCode)
		})
	}
}

func TestCategoryApp_Delete(t *testing.T) {
	t.Run("record removed then image released", func(t *testing.T) {
		f := newFields(t)
		deleted := f.categoryRepo.
			On("Delete", mock.Anything, "c1").
			Return(&model.CategoryEntity{ID: "c1", Image: "uploads/categories/a.png"}, nil).
			Once()
		f.assets.On("Release", mock.Anything, "uploads/categories/a.png").Once().NotBefore(deleted)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		got, err := f.app().Delete(context.Background(), "c1")
		if err != nil || got.ID != "c1" {
			t.Fatalf("Delete() = %+v, %v", got, err)
		}
	})

	t.Run("missing category", func(t *testing.T) {
		f := newFields(t)
		f.categoryRepo.On("Delete", mock.Anything, "c1").Return(nil, repository.ErrNotFound).Once()

		_, err := f.app().Delete(context.Background(), "c1")
		checkErr(t, err, true, constant.ErrNotFound)
	})
}

func TestCategoryApp_List(t *testing.T) {
	f := newFields(t)
	f.categoryRepo.
		On("List", mock.Anything, &model.CategoryFilter{Name: "pho"}).
		Return([]model.CategoryEntity{{ID: "c1", Name: "Phones"}}, nil).
		Once()

	got, err := f.app().List(context.Background(), &model.CategoryFilter{Name: "pho"})
	if err != nil || got.Count != 1 || got.Categories[0].ID != "c1" {
		t.Fatalf("List() = %+v, %v", got, err)
	}
}
