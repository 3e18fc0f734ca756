// Package storage reads schedule exports kept in an S3-compatible bucket.
//
// Client is the narrow MinIO surface the comparison service needs: a bucket
// check, object metadata (the ETag keys the parse cache), downloads and
// listing. It is an interface so tests can use core/storage/mocks.
//
// ReadObject downloads an object with an optional size cap, NormalizePrefix
// turns a configured folder into a key prefix and IsNotFound recognises
// missing keys and buckets.
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "project/list.csv", 16<<20)
package storage
