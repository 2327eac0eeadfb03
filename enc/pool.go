package enc

import "sync"

// TODO: size the pooled buffers per type, starting from the fixed-size of the type.

// GetPooledSerializer returns an empty serializer from the pool.
func GetPooledSerializer() *Serializer {
	s := serializerPool.Get().(*Serializer)
	s.Reset()
	return s
}

// ReleasePooledSerializer returns a serializer to the pool. It must not be used afterwards.
func ReleasePooledSerializer(s *Serializer) {
	serializerPool.Put(s)
}

// Serializers are pooled, each one is owned by a single caller at a time.
var serializerPool = sync.Pool{
	New: func() interface{} { return new(Serializer) },
}
