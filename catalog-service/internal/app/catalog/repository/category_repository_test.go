package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"productcatalog/catalog-service/internal/app/catalog/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CategoryRepositoryTestSuite тестовый suite для PostgreSQL repository категорий
type CategoryRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  CategoryRepository
	sqlDB *sql.DB
}

func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}

func (s *CategoryRepositoryTestSuite) SetupTest() {
	s.db, s.mock, s.sqlDB = newMockDB(s.T())
	s.repo = NewCategoryRepository(s.db)
}

func (s *CategoryRepositoryTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

// ===================== FindAll Tests =====================

func (s *CategoryRepositoryTestSuite) TestFindAll_Success() {
	rows := sqlmock.NewRows([]string{"id", "name", "description"}).
		AddRow(1, "Electronics", "Electronic devices").
		AddRow(2, "Books", "")

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "categories" ORDER BY id ASC`)).
		WillReturnRows(rows)

	categories, err := s.repo.FindAll(context.Background())

	s.NoError(err)
	s.Len(categories, 2)
	s.Equal(uint(1), categories[0].ID)
	s.Equal("Books", categories[1].Name)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *CategoryRepositoryTestSuite) TestFindAll_Empty() {
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "categories"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}))

	categories, err := s.repo.FindAll(context.Background())

	s.NoError(err)
	s.NotNil(categories)
	s.Empty(categories)
}

func (s *CategoryRepositoryTestSuite) TestFindAll_DBError() {
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "categories"`)).
		WillReturnError(sql.ErrConnDone)

	categories, err := s.repo.FindAll(context.Background())

	s.Error(err)
	s.Nil(categories)
	s.Contains(err.Error(), "failed to get categories")
}

// ===================== FindByID Tests =====================

func (s *CategoryRepositoryTestSuite) TestFindByID_Success() {
	rows := sqlmock.NewRows([]string{"id", "name", "description"}).
		AddRow(1, "Electronics", "Electronic devices")

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "categories" WHERE "categories"."id" = $1`)).
		WillReturnRows(rows)

	category, err := s.repo.FindByID(context.Background(), 1)

	s.NoError(err)
	s.Equal(uint(1), category.ID)
	s.Equal("Electronics", category.Name)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *CategoryRepositoryTestSuite) TestFindByID_NotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "categories" WHERE "categories"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}))

	category, err := s.repo.FindByID(context.Background(), 42)

	s.ErrorIs(err, ErrCategoryNotFound)
	s.Equal(entity.Category{}, category)
}

func (s *CategoryRepositoryTestSuite) TestFindByID_DBError() {
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "categories"`)).
		WillReturnError(sql.ErrConnDone)

	_, err := s.repo.FindByID(context.Background(), 1)

	s.Error(err)
	s.NotErrorIs(err, ErrCategoryNotFound)
	s.Contains(err.Error(), "failed to get category by id")
}

// ===================== Save Tests =====================

func (s *CategoryRepositoryTestSuite) TestSave_Insert() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "categories" ("name","description") VALUES ($1,$2) RETURNING "id"`)).
		WithArgs("Garden", "Outdoor").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	s.mock.ExpectCommit()

	category := &entity.Category{Name: "Garden", Description: "Outdoor"}
	err := s.repo.Save(context.Background(), category)

	s.NoError(err)
	s.Equal(uint(5), category.ID)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *CategoryRepositoryTestSuite) TestSave_Update() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "categories" SET "name"=$1,"description"=$2 WHERE "id" = $3`)).
		WithArgs("Gadgets", "", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	err := s.repo.Save(context.Background(), &entity.Category{ID: 1, Name: "Gadgets"})

	s.NoError(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *CategoryRepositoryTestSuite) TestSave_UpdateMissingRowIsNotRecreated() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "categories" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	err := s.repo.Save(context.Background(), &entity.Category{ID: 9, Name: "Gone"})

	s.ErrorIs(err, ErrCategoryNotFound)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *CategoryRepositoryTestSuite) TestSave_DuplicateName() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "categories"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	s.mock.ExpectRollback()

	err := s.repo.Save(context.Background(), &entity.Category{Name: "Electronics"})

	s.ErrorIs(err, ErrDuplicateKey)
	s.NoError(s.mock.ExpectationsWereMet())
}

// ===================== DeleteByID Tests =====================

func (s *CategoryRepositoryTestSuite) TestDeleteByID_CascadesProducts() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products" WHERE category_id = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 3))
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "categories" WHERE "categories"."id" = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	deleted, err := s.repo.DeleteByID(context.Background(), 1)

	s.NoError(err)
	s.Equal(int64(1), deleted)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *CategoryRepositoryTestSuite) TestDeleteByID_Absent() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "categories"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	deleted, err := s.repo.DeleteByID(context.Background(), 404)

	s.NoError(err)
	s.Zero(deleted)
}

func (s *CategoryRepositoryTestSuite) TestDeleteByID_RollbackOnError() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "categories"`)).
		WillReturnError(sql.ErrConnDone)
	s.mock.ExpectRollback()

	deleted, err := s.repo.DeleteByID(context.Background(), 1)

	s.Error(err)
	s.Zero(deleted)
	s.Contains(err.Error(), "failed to delete category")
	s.NoError(s.mock.ExpectationsWereMet())
}
