package service

import (
	"context"
	b64 "encoding/base64"
	"errors"
	"fmt"
	"strings"

	"drive4less/config"
	"drive4less/infras/kafka"
	"drive4less/infras/otel"
	"drive4less/infras/s3"
	"drive4less/internal/domains/vehicle/model"
	"drive4less/internal/domains/vehicle/model/dto"
	"drive4less/internal/domains/vehicle/repository"
	"drive4less/shared"
	"drive4less/shared/base64"
	"drive4less/shared/cache"
	"drive4less/shared/constant"
	gDto "drive4less/shared/dto"
	"drive4less/shared/failure"
	"drive4less/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheGetVehicle    = "vehicle:get"
	cacheGetAllVehicle = "vehicle:get_all"
	cacheCountVehicle  = "vehicle:count"
	cacheStatsVehicle  = "vehicle:stats"
	cacheCatalog       = "catalog"

	EventVehicleCreated = "vehicle.created"
	EventVehicleUpdated = "vehicle.updated"
	EventVehicleDeleted = "vehicle.deleted"
)

var (
	ErrDeleteImagesFromS3 = errors.New("failed to delete images from S3")
)

var extensionByContentType = map[string]string{
	"image/png":  ".png",
	"image/jpg":  ".jpg",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

type Vehicle interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (dto.CreateVehicleResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVehiclesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.VehicleResponse, error)
	Update(ctx context.Context, req dto.UpdateVehicleRequest, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.VehicleStatsResponse, error)
	UploadImages(ctx context.Context, req dto.UploadImagesRequest) (dto.UploadImagesResponse, error)
	UploadImagesBase64(ctx context.Context, req dto.UploadImagesBase64Request) (dto.UploadImagesResponse, error)
	DeleteImagesFromS3(ctx context.Context, req dto.DeleteImagesRequest) error
}

type serviceImpl struct {
	repo  repository.Vehicle
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
	kafka kafka.Client
}

func New(repo repository.Vehicle, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3, kafka kafka.Client) Vehicle {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
		kafka: kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVehicleRequest) (res dto.CreateVehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	vehicle := req.ToModel(user)

	if err = s.repo.Insert(ctx, vehicle); err != nil {
		return res, err
	}

	res.FromModel(vehicle)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateListingCaches(c)
		s.publishEvent(c, EventVehicleCreated, vehicle)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVehiclesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVehicle, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicles")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count vehicles")

		return res, err
	}

	vehicles, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicles")

		return res, err
	}

	res.FromModels(vehicles, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicles to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountVehicle, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicle count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count vehicles")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVehicle, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicle")

		return res, nil
	}

	vehicle, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle")

		return res, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("vehicle %s not found", id))
	}

	res.FromModel(vehicle)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateVehicleRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check vehicle existence")

		return err
	}

	if !exist {
		log.Error().Str("id", id).Msg("vehicle not found")

		return failure.NotFound(fmt.Sprintf("vehicle %s not found", id))
	}

	if err = s.repo.Update(ctx, req.ToUpdateMap(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update vehicle")

		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVehicle, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete vehicle cache")
		}

		s.invalidateListingCaches(c)
		s.publishEvent(c, EventVehicleUpdated, model.Vehicle{
			ID:     id,
			Brand:  req.Brand,
			Model:  req.Model,
			Status: req.Status,
		})
	}()

	return nil
}

// Delete removes the vehicle row only. Stored images stay in the bucket and
// are cleaned up explicitly through DeleteImagesFromS3, so a delete never
// half-fails on object storage.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	vehicle, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle for deletion")

		return fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == constant.Empty {
		log.Error().Str("id", id).Msg("vehicle not found")

		return failure.NotFound(fmt.Sprintf("vehicle %s not found", id))
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete vehicle")

		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVehicle, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete vehicle cache")
		}

		s.invalidateListingCaches(c)
		s.publishEvent(c, EventVehicleDeleted, vehicle)
	}()

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.VehicleStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStatsVehicle, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheStatsVehicle).Msg("cache hit for vehicle stats")

		return res, nil
	}

	if res.Total, err = s.repo.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count vehicles")

		return res, err
	}

	counts := map[string]*int{
		constant.VehicleStatusAvailable: &res.Available,
		constant.VehicleStatusSold:      &res.Sold,
		constant.VehicleStatusReserved:  &res.Reserved,
	}

	for status, target := range counts {
		*target, err = s.repo.Count(ctx, filterByStatus(status))
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("failed to count vehicles by status")

			return res, err
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStatsVehicle, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle stats to cache")
		}
	}()

	return res, nil
}

// UploadImages stores a batch of images under the public upload directory.
// Uploads run concurrently with a bounded worker count, and the result slice
// keeps the submission order regardless of which upload finishes first.
func (s *serviceImpl) UploadImages(ctx context.Context, req dto.UploadImagesRequest) (res dto.UploadImagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName
	uploads := make([]dto.UploadedImage, len(req.Files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constant.UploadConcurrency)

	for i, fileHeader := range req.Files {
		g.Go(func() error {
			file, err := fileHeader.Open()
			if err != nil {
				return fmt.Errorf("failed to open uploaded file: %w", err)
			}
			defer file.Close()

			fileName := uniqueFileName(fileHeader.Filename)

			url, err := s.s3.UploadFile(gctx, bucketName, constant.UploadDirectory, file, fileHeader, fileName)
			if err != nil {
				log.Error().Err(err).Str("fileName", fileName).Msg("failed to upload file to S3")

				return fmt.Errorf("failed to upload file to S3: %w", err)
			}

			uploads[i] = dto.UploadedImage{URL: url, FileName: fileName}

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return res, err
	}

	res.FromUploads(uploads)

	return res, nil
}

// UploadImagesBase64 is the data-URL variant of UploadImages.
func (s *serviceImpl) UploadImagesBase64(ctx context.Context, req dto.UploadImagesBase64Request) (res dto.UploadImagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImagesBase64")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName
	uploads := make([]dto.UploadedImage, len(req.Images))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constant.UploadConcurrency)

	for i, image := range req.Images {
		g.Go(func() error {
			contentType := base64.GetContentType(image)

			payload, err := decodeDataURL(image)
			if err != nil {
				return failure.BadRequest(err) //nolint:wrapcheck
			}

			fileName := uniqueFileName(extensionByContentType[contentType])

			url, err := s.s3.UploadFileBytes(gctx, bucketName, constant.UploadDirectory, fileName, contentType, payload)
			if err != nil {
				log.Error().Err(err).Str("fileName", fileName).Msg("failed to upload file to S3")

				return fmt.Errorf("failed to upload file to S3: %w", err)
			}

			uploads[i] = dto.UploadedImage{URL: url, FileName: fileName}

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return res, err
	}

	res.FromUploads(uploads)

	return res, nil
}

func (s *serviceImpl) DeleteImagesFromS3(ctx context.Context, req dto.DeleteImagesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImagesFromS3")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	var deleteErrors []error

	for _, imageURL := range req.ImageURLs {
		objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

			continue
		}

		if err := s.s3.DeleteFile(ctx, bucketName, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
			deleteErrors = append(deleteErrors, err)
		}
	}

	if len(deleteErrors) > 0 {
		return fmt.Errorf("%w: %d images", ErrDeleteImagesFromS3, len(deleteErrors))
	}

	return nil
}

func (s *serviceImpl) invalidateListingCaches(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllVehicle)
	shared.InvalidateCaches(ctx, s.cache, cacheCountVehicle)
	shared.InvalidateCaches(ctx, s.cache, cacheStatsVehicle)
	shared.InvalidateCaches(ctx, s.cache, cacheCatalog)
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, vehicle model.Vehicle) {
	if !s.cfg.Kafka.Enable {
		return
	}

	msg := kafka.Message{
		Key:   vehicle.ID,
		Value: dto.NewInventoryEvent(event, vehicle),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic, msg); err != nil {
		log.Error().Err(err).Str("event", event).Str("vehicleID", vehicle.ID).Msg("failed to publish inventory event")
	}
}

func filterByStatus(status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    status,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

// uniqueFileName prefixes the original name with the upload timestamp and a
// short random token so repeated uploads of the same file never collide.
func uniqueFileName(original string) string {
	token := strings.Split(uuid.NewString(), "-")[0]
	name := fmt.Sprintf("%d-%s", timezone.Now().UnixMilli(), token)

	// Data-URL uploads only carry an extension, not a file name.
	if strings.HasPrefix(original, ".") {
		return name + original
	}

	return name + "-" + original
}

func decodeDataURL(image string) ([]byte, error) {
	idx := strings.Index(image, ";base64,")
	if idx == -1 {
		return nil, errors.New("image must be a base64 data URL")
	}

	payload, err := b64.StdEncoding.DecodeString(image[idx+len(";base64,"):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}

	return payload, nil
}
