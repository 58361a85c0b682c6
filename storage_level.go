package sifmock

// StorageLevel is the persistence hint recorded by Persist. It has no effect on
// how data is held, since every RDD already lives in memory.
type StorageLevel string

const (
	// StorageLevelNone indicates that an RDD has not been persisted
	StorageLevelNone StorageLevel = ""
	// StorageLevelMemoryOnly is the level recorded by Cache
	StorageLevelMemoryOnly StorageLevel = "MEMORY_ONLY"
	// StorageLevelMemoryAndDisk asks for memory, spilling to disk
	StorageLevelMemoryAndDisk StorageLevel = "MEMORY_AND_DISK"
	// StorageLevelDiskOnly asks for disk storage only
	StorageLevelDiskOnly StorageLevel = "DISK_ONLY"
	// StorageLevelOffHeap asks for off-heap storage
	StorageLevelOffHeap StorageLevel = "OFF_HEAP"
)
