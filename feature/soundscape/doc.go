// Package soundscape serves the ambient audio loops (rain, cafe, white
// noise) the focus surfaces play. Audio files are server-curated objects in
// S3/MinIO under the soundscapes/ prefix; nothing here participates in
// offline sync.
//
// # HTTP Endpoints
//
//   - GET /soundscapes        : list available loops with size and MIME type.
//   - GET /soundscapes/:file  : stream one loop.
package soundscape
