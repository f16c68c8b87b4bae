package app

import (
	"context"

	config "github.com/DRSN-tech/store-api/internal/cfg"
	"github.com/DRSN-tech/store-api/internal/loader"
	"github.com/DRSN-tech/store-api/internal/repository/minio"
	"github.com/DRSN-tech/store-api/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/store-api/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/store-api/internal/usecase"
	"github.com/DRSN-tech/store-api/pkg/clients"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/logger"
	"github.com/jimlawless/whereami"
)

// RunLoader читает CSV из path, пересоздаёт схему и загружает товары.
// Файл разбирается до сброса схемы, чтобы битый источник не уничтожил данные.
func RunLoader(ctx context.Context, cfg *config.Config, logger logger.Logger, path string) (*usecase.ImportProductsRes, error) {
	objects, err := initObjectStorage(ctx, cfg, path)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	src, err := loader.OpenSource(ctx, path, objects)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer src.Close()

	parsed, err := loader.ReadProducts(src)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	logger.Infof("parsed %s: products=%d skipped=%d", path, len(parsed.Products), parsed.Skipped)

	db, err := initPGDB(ctx, logger, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer db.Close()

	prConv := pgdbConv.NewProductConverterImpl()
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	userRepo := pgdb.NewUserRepo(db.Pool, pgdbConv.NewUserConverterImpl())

	importUC := usecase.NewImportUC(db, userRepo, productRepo, db.Pool, logger)

	res, err := importUC.ImportProducts(ctx, usecase.NewImportProductsReq(parsed.Products, parsed.Skipped))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return res, nil
}

// initObjectStorage нужен только для путей s3://.
func initObjectStorage(ctx context.Context, cfg *config.Config, path string) (loader.ObjectOpener, error) {
	if !loader.IsObjectURL(path) || !cfg.Minio.Enabled {
		return nil, nil
	}

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	bucket, _, err := loader.ParseObjectURL(path)
	if err != nil {
		return nil, err
	}

	if err := clients.EnsureBucket(ctx, minioClient, bucket); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return minio.NewObjectRepo(minioClient), nil
}
