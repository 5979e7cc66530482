//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/adega-api/internal/domain"
	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/domain/repository"
	"github.com/jhoicas/adega-api/internal/infrastructure/postgres"
	"github.com/jhoicas/adega-api/pkg/config"
)

// go test -tags integration ./internal/infrastructure/postgres/...  (requiere Docker)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("conectar a docker: %v", err)
	}
	dockerPool.MaxWait = 2 * time.Minute

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=adega",
			"POSTGRES_PASSWORD=adega",
			"POSTGRES_DB=adega",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("iniciar postgres: %v", err)
	}
	_ = resource.Expire(300)

	port, _ := strconv.Atoi(resource.GetPort("5432/tcp"))
	cfg := config.DBConfig{
		Host: "localhost", Port: port, User: "adega", Password: "adega", DBName: "adega", SSLMode: "disable",
	}

	ctx := context.Background()
	if err := dockerPool.Retry(func() error {
		p, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		testPool = p
		return nil
	}); err != nil {
		_ = dockerPool.Purge(resource)
		log.Fatalf("esperar postgres: %v", err)
	}
	if _, err := postgres.Migrate(ctx, testPool); err != nil {
		_ = dockerPool.Purge(resource)
		log.Fatalf("migrate: %v", err)
	}

	code := m.Run()

	testPool.Close()
	if err := dockerPool.Purge(resource); err != nil {
		log.Printf("purge: %v", err)
	}
	os.Exit(code)
}

func reset(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE produtos, entradas_estoque, saidas_estoque, transacoes_caixa RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func createProduct(t *testing.T, name string) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name: name, BeverageType: "cerveja", Supplier: "Ambev",
		Cost: decimal.RequireFromString("3.20"), SalePrice: decimal.RequireFromString("6.50"),
	}
	require.NoError(t, postgres.NewProductRepository(testPool).Create(context.Background(), p))
	return p
}

func countRows(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, testPool.QueryRow(context.Background(), fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&n))
	return n
}

func TestMigrate_Idempotente(t *testing.T) {
	applied, err := postgres.Migrate(context.Background(), testPool)
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestCurrentLevels_SumasSinMultiplicarFilas_PuedeSerNegativo(t *testing.T) {
	reset(t)
	ctx := context.Background()
	a := createProduct(t, "Skol")
	b := createProduct(t, "Brahma")

	ins := postgres.NewStockInRepository(testPool)
	outs := postgres.NewStockOutRepository(testPool)
	for _, q := range []int{2, 3} {
		require.NoError(t, ins.Create(ctx, &entity.StockIn{
			ProductID: a.ID, Date: day("2024-01-01"), Quantity: q, PurchaseValue: decimal.NewFromInt(10),
		}))
	}
	for _, q := range []int{3, 4} {
		require.NoError(t, outs.Create(ctx, &entity.StockOut{
			ProductID: a.ID, Date: day("2024-01-02"), Quantity: q, SalePrice: decimal.NewFromInt(6),
		}))
	}

	levels, err := postgres.NewStockLevelRepository(testPool).CurrentLevels(ctx)
	require.NoError(t, err)
	require.Len(t, levels, 2)

	assert.Equal(t, a.ID, levels[0].Product.ID)
	assert.Equal(t, int64(5), levels[0].TotalIn)
	assert.Equal(t, int64(7), levels[0].TotalOut)
	assert.Equal(t, int64(-2), levels[0].OnHand())

	assert.Equal(t, b.ID, levels[1].Product.ID)
	assert.Zero(t, levels[1].TotalIn)
	assert.Zero(t, levels[1].TotalOut)
}

func TestTotals_SinFilas_DevuelveCeros(t *testing.T) {
	reset(t)
	ctx := context.Background()

	in, out, err := postgres.NewCashTransactionRepository(testPool).Totals(ctx, repository.Period{})
	require.NoError(t, err)
	assert.True(t, in.IsZero())
	assert.True(t, out.IsZero())

	sales, err := postgres.NewStockOutRepository(testPool).SalesTotal(ctx, repository.Period{})
	require.NoError(t, err)
	assert.True(t, sales.IsZero())
}

func TestTotals_FiltraPorTipoYPeriodo(t *testing.T) {
	reset(t)
	ctx := context.Background()
	repo := postgres.NewCashTransactionRepository(testPool)
	for _, tx := range []*entity.CashTransaction{
		{Kind: entity.CashKindIn, Amount: decimal.RequireFromString("100.00"), Date: day("2024-01-10")},
		{Kind: entity.CashKindOut, Amount: decimal.RequireFromString("35.50"), Date: day("2024-01-11")},
		{Kind: entity.CashKindIn, Amount: decimal.RequireFromString("999.00"), Date: day("2024-02-01")},
	} {
		require.NoError(t, repo.Create(ctx, tx))
	}

	from, to := day("2024-01-01"), day("2024-01-31")
	in, out, err := repo.Totals(ctx, repository.Period{From: &from, To: &to})
	require.NoError(t, err)
	assert.True(t, in.Equal(decimal.NewFromInt(100)), in.String())
	assert.True(t, out.Equal(decimal.RequireFromString("35.5")), out.String())
}

func TestDelete_ProductoConMovimientos_ErrProductInUse(t *testing.T) {
	reset(t)
	ctx := context.Background()
	used := createProduct(t, "Skol")
	free := createProduct(t, "Brahma")
	require.NoError(t, postgres.NewStockInRepository(testPool).Create(ctx, &entity.StockIn{
		ProductID: used.ID, Date: day("2024-01-01"), Quantity: 1, PurchaseValue: decimal.NewFromInt(1),
	}))

	products := postgres.NewProductRepository(testPool)
	assert.ErrorIs(t, products.Delete(ctx, used.ID), domain.ErrProductInUse)
	assert.NoError(t, products.Delete(ctx, free.ID))
	assert.ErrorIs(t, products.Delete(ctx, free.ID), domain.ErrNotFound)
}

func TestStockOutList_IncluyeSnapshotDelProducto(t *testing.T) {
	reset(t)
	ctx := context.Background()
	p := createProduct(t, "Skol")
	outs := postgres.NewStockOutRepository(testPool)
	require.NoError(t, outs.Create(ctx, &entity.StockOut{
		ProductID: p.ID, Date: day("2024-03-10"), Quantity: 3, SalePrice: decimal.RequireFromString("10.01"),
	}))

	list, err := outs.List(ctx, repository.Period{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Product)
	assert.Equal(t, "Skol", list[0].Product.Name)

	total, err := outs.SalesTotal(ctx, repository.Period{})
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("30.03")), total.String())
}

func TestTxRunner_FallaCaja_NoQuedaSalida(t *testing.T) {
	reset(t)
	ctx := context.Background()
	p := createProduct(t, "Skol")

	err := postgres.NewTxRunner(testPool).Run(ctx, func(outRepo repository.StockOutRepository, cashRepo repository.CashTransactionRepository) error {
		sale := &entity.StockOut{ProductID: p.ID, Date: day("2024-03-10"), Quantity: 1, SalePrice: decimal.Zero}
		if err := outRepo.Create(ctx, sale); err != nil {
			return err
		}
		return cashRepo.Create(ctx, &entity.CashTransaction{Kind: entity.CashKindIn, Amount: sale.Total(), Date: sale.Date})
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "valor", verr.Field)
	assert.Zero(t, countRows(t, "saidas_estoque"))
	assert.Zero(t, countRows(t, "transacoes_caixa"))
}

func TestTxRunner_Commit_PersisteAmbas(t *testing.T) {
	reset(t)
	ctx := context.Background()
	p := createProduct(t, "Skol")

	err := postgres.NewTxRunner(testPool).Run(ctx, func(outRepo repository.StockOutRepository, cashRepo repository.CashTransactionRepository) error {
		sale := &entity.StockOut{ProductID: p.ID, Date: day("2024-03-10"), Quantity: 2, SalePrice: decimal.RequireFromString("7.25")}
		if err := outRepo.Create(ctx, sale); err != nil {
			return err
		}
		return cashRepo.Create(ctx, &entity.CashTransaction{Kind: entity.CashKindIn, Amount: sale.Total(), Date: sale.Date})
	})
	require.NoError(t, err)

	sales, err := postgres.NewStockOutRepository(testPool).SalesTotal(ctx, repository.Period{})
	require.NoError(t, err)
	in, _, err := postgres.NewCashTransactionRepository(testPool).Totals(ctx, repository.Period{})
	require.NoError(t, err)
	assert.True(t, sales.Equal(in), "ventas %s, caixa %s", sales, in)
}
