package ports

import "image"

// DebugSink receives intermediate results of the develop stage, keyed by
// photo name. Stages treat a nil DebugSink as debug output being off.
type DebugSink interface {
	SaveMetadataJSON(name string, data []byte) error
	SavePreview(name string, img image.Image) error
}
