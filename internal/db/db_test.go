package db_test

import (
	"context"
	"database/sql"
	"errors"

	"financeguard/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}

	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			// Reset the mock expectations before each test
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SaveToTable", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) ON CONFLICT DO NOTHING RETURNING "id"$`).
				WithArgs("Alice", 1, "Bob", 2).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

			mock.ExpectCommit()
		})

		It("should save records without errors", func() {
			err := testDB.SaveToTable(context.Background(), &[]Test{
				{ID: 1, Username: "Alice"},
				{ID: 2, Username: "Bob"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should skip an empty slice", func() {
			err := testDB.SaveToTable(context.Background(), &[]Test{})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject a non-pointer", func() {
			err := testDB.SaveToTable(context.Background(), []Test{})
			Expect(err).To(MatchError(ContainSubstring("must be a pointer")))
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("CountBy", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE "username" = \$1`).
				WithArgs("Alice").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		})

		It("should count the matching rows", func() {
			count, err := testDB.CountBy(context.Background(), &Test{}, map[string]any{"username": "Alice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(3)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("MaxOf", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT COALESCE\(MAX\(id\), 0\) FROM "tests"`).
				WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(42))
		})

		It("should return the largest value", func() {
			highest, err := testDB.MaxOf(context.Background(), &Test{}, "id")
			Expect(err).NotTo(HaveOccurred())
			Expect(highest).To(Equal(int64(42)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("NthBy", func() {
		When("the position exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE "username" = \$1 ORDER BY id LIMIT \$2 OFFSET \$3`).
					WithArgs("Alice", 1, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(7, "Alice"))
			})

			It("should load that row", func() {
				var result Test
				err := testDB.NthBy(context.Background(), map[string]any{"username": "Alice"}, "id", 1, &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(7)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the position is past the end", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE "username" = \$1 ORDER BY id LIMIT \$2 OFFSET \$3`).
					WithArgs("Alice", 1, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.NthBy(context.Background(), map[string]any{"username": "Alice"}, "id", 1, &result)
				Expect(err).To(Equal(db.ErrNotFound))
			})
		})
	})

	Describe("Commit", func() {
		When("every op succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectQuery(`^INSERT INTO "tests" .* ON CONFLICT \("id"\) DO UPDATE SET "username"="excluded"."username" RETURNING "id"$`).
					WithArgs("Bob", 2).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
				mock.ExpectCommit()
			})

			It("should apply all ops in one transaction", func() {
				err := testDB.Commit(context.Background(),
					db.Insert(&Test{ID: 1, Username: "Alice"}),
					db.Upsert(&Test{ID: 2, Username: "Bob"}, []string{"id"}, []string{"username"}),
				)
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an op fails", func() {
			var opErr error

			BeforeEach(func() {
				opErr = errors.New("op error")
				mock.ExpectBegin()
				mock.ExpectRollback()
			})

			It("should roll back", func() {
				err := testDB.Commit(context.Background(), func(*gorm.DB) error { return opErr })
				Expect(err).To(MatchError(opErr))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
