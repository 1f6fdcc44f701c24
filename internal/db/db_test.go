package db_test

import (
	"context"
	"database/sql"
	"mylibrary/internal/db"

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
		testDB *db.GormDB
		ctx    context.Context
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

		testDB = &db.GormDB{
			DB: gormDB,
		}
		ctx = context.Background()
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
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

	Describe("SeedTable", func() {
		When("the table is empty", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests".*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

				mock.ExpectBegin()

				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"$`).
					WithArgs("Alice", 1, "Bob", 2).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

				mock.ExpectCommit()
			})

			It("should save records without errors", func() {
				err := testDB.SeedTable(ctx, &[]Test{
					{ID: 1, Username: "Alice"},
					{ID: 2, Username: "Bob"},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the table already holds records", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests".*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			})

			It("should not insert anything", func() {
				err := testDB.SeedTable(ctx, &[]Test{{ID: 1, Username: "Alice"}})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("CreateRecord", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) RETURNING "id"$`).
				WithArgs("Alice").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

			mock.ExpectCommit()
		})

		It("should insert the record and fill the id", func() {
			record := Test{Username: "Alice"}
			err := testDB.CreateRecord(ctx, &record)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(Equal(uint(1)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
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
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
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
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetPage", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY id asc LIMIT \$2.*`).
					WithArgs("Alice", 2).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Alice"))
			})

			It("should return the requested page", func() {
				var results []Test
				err := testDB.GetPage(ctx, "username", "Alice", "id asc", 0, 2, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid", 2).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetPage(ctx, "username", "Invalid", "id asc", 0, 2, &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("CountBy", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE username = \$1`).
				WithArgs("Alice").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
		})

		It("should return the count", func() {
			count, err := testDB.CountBy(ctx, &Test{}, "username", "Alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(4)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("UpdateRecord", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE "id" = \$2$`).
				WithArgs("Alice", 1).
				WillReturnResult(sqlmock.NewResult(0, 1))

			mock.ExpectCommit()
		})

		It("should persist the full record", func() {
			err := testDB.UpdateRecord(ctx, &Test{ID: 1, Username: "Alice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("DeleteRecord", func() {
		When("the record exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectExec(`^DELETE FROM "tests" WHERE "tests"\."id" = \$1$`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))

				mock.ExpectCommit()
			})

			It("should report one affected row", func() {
				affected, err := testDB.DeleteRecord(ctx, &Test{ID: 1})
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the record is absent", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectExec(`^DELETE FROM "tests" WHERE "tests"\."id" = \$1$`).
					WithArgs(99).
					WillReturnResult(sqlmock.NewResult(0, 0))

				mock.ExpectCommit()
			})

			It("should report zero affected rows", func() {
				affected, err := testDB.DeleteRecord(ctx, &Test{ID: 99})
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(Equal(int64(0)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
