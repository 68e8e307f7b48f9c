package media

import (
	"bytes"
	"context"
	"time"

	"mediavault/internal/logger"
	"mediavault/internal/model"
	"mediavault/internal/port"
)

type mediaUploaderSrv struct {
	repo       port.MediaRepository
	strg       port.Storage
	cache      port.Cache
	dispatcher port.TaskDispatcher
	genUUID    port.UUIDGen
	bucket     string
}

// compile-time check: *mediaUploaderSrv must satisfy port.MediaUploader
var _ port.MediaUploader = (*mediaUploaderSrv)(nil)

// NewMediaUploader constructs a MediaUploader implementation.
func NewMediaUploader(repo port.MediaRepository, strg port.Storage, cache port.Cache, dispatcher port.TaskDispatcher, genUUID port.UUIDGen, bucket string) port.MediaUploader {
	return &mediaUploaderSrv{repo, strg, cache, dispatcher, genUUID, bucket}
}

// UploadMedia validates the file, writes the object, then records the
// metadata row. The two writes are not transactional; a failed insert
// triggers a compensating object removal so no orphan survives the request.
func (s *mediaUploaderSrv) UploadMedia(ctx context.Context, in port.UploadMediaInput) (port.MediaOutput, error) {
	size := int64(len(in.Data))
	mimeType := DetectMimeType(in.OriginalFilename, in.Data)

	// local validation happens before any storage or database call
	if err := ValidateUpload(size, mimeType); err != nil {
		return port.MediaOutput{}, err
	}

	metadata, err := ExtractMetadata(mimeType, in.Data)
	if err != nil {
		// a file we cannot introspect is still storable
		logger.Warnf(ctx, "could not extract metadata for %q: %v", in.OriginalFilename, err)
		metadata = model.Metadata{}
	}

	now := time.Now().UTC()
	objectKey := NewObjectKey(now, in.OriginalFilename)

	if err := s.strg.SaveFile(
		ctx,
		s.bucket,
		objectKey,
		bytes.NewReader(in.Data),
		size,
		map[string]string{"Content-Type": mimeType},
	); err != nil {
		return port.MediaOutput{}, err
	}

	m := &model.Media{
		ID:               s.genUUID(),
		ObjectKey:        objectKey,
		OriginalFilename: in.OriginalFilename,
		URL:              s.strg.PublicURL(s.bucket, objectKey),
		MimeType:         mimeType,
		SizeBytes:        size,
		AltText:          in.AltText,
		Tags:             in.Tags,
		UploaderID:       in.UploaderID,
		Metadata:         metadata,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		// compensating removal of the object we just wrote
		if rmErr := s.strg.RemoveFile(ctx, s.bucket, objectKey); rmErr != nil {
			logger.Errorf(ctx, "failed to remove object %q after insert failure: %v", objectKey, rmErr)
		}
		return port.MediaOutput{}, err
	}

	if err := s.cache.BumpListVersion(ctx); err != nil {
		logger.Warnf(ctx, "failed to bump gallery cache version: %v", err)
	}

	if IsImage(mimeType) {
		if err := s.dispatcher.EnqueueGenerateThumbnail(ctx, m.ID); err != nil {
			logger.Warnf(ctx, "failed to enqueue thumbnail for media #%s: %v", m.ID, err)
		}
	}

	return toMediaOutput(m, s.strg, s.bucket), nil
}
