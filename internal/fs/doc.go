// Package fs abstracts the file operations of the local blob store so tests
// can inject write failures.
//
// Production code uses [Default] ([LocalFS]). Tests wrap it in a [FaultyFS]:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp-", fs.Fault{FailAfterBytes: -1, FailOnSync: true})
//	store := blobstore.NewLocalStore(dir, blobstore.WithFileSystem(ffs))
package fs
