// Package config loads runtime configuration for the SITRACK terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected by -c/-config or SITRACK_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://sitrack.example.com",
//	  "database_path": "sitrack.db",
//	  "request_timeout": "15s",
//	  "storage_secret": "change-me",
//	  "log_level": "info",
//	  "export_dir": "exports",
//	  "s3": {
//	    "endpoint": "http://localhost:9000",
//	    "region": "us-east-1",
//	    "bucket": "reports",
//	    "access_key": "minio",
//	    "secret_key": "minio123",
//	    "prefix": "sitrack"
//	  }
//	}
//
// request_timeout accepts a duration string or integer nanoseconds
// (timex.Duration). When the s3 block names a bucket, exported reports are
// uploaded there instead of written to export_dir.
package config
