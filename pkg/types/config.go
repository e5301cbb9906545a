package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Storage driver: file, sqlite, postgres or s3
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"file"`
	DataDir       string `envconfig:"DATA_DIR" default:"./data"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"./data/alkhair.db"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`

	// S3 snapshot storage
	SnapshotBucket string `envconfig:"SNAPSHOT_BUCKET"`
	SnapshotKey    string `envconfig:"SNAPSHOT_KEY" default:"alkhair_data.json"`

	// Optional portable copy (USB folder) written after every save
	SyncDir string `envconfig:"SYNC_DIR"`

	// Case photos, ID cards and documents. Without a bucket uploads are
	// stored inline as data URIs.
	MediaBucket    string `envconfig:"MEDIA_BUCKET"`
	MediaBaseURL   string `envconfig:"MEDIA_BASE_URL"`
	MaxUploadBytes int64  `envconfig:"MAX_UPLOAD_BYTES" default:"5242880"` // 5 MiB
}
