// Package registry stores named record schemas and validates records
// against them.
//
// A Store persists schemas. The package ships five of them:
//
//   - MemoryStore keeps schemas in process memory.
//   - DirStore reads <name>.yaml, <name>.yml or <name>.json files from a
//     directory. It is read-only and can watch the directory for edits.
//   - RedisStore keeps schema JSON in one Redis hash.
//   - PostgresStore keeps schema JSON in the record_schemas table. Run
//     MigratePostgres once to create it.
//   - MongoStore keeps one document per schema.
//
// Registry sits in front of a Store with an LRU cache of parsed schemas:
//
//	reg := registry.New(store, registry.WithCacheSize(256), registry.WithLogger(log))
//	res, err := reg.Validate(ctx, "usuario", input)
//	if err != nil {
//		// lookup failed: unknown schema, invalid name or store error
//	}
//	if !res.OK() {
//		// res.Violations() explains why the record was rejected
//	}
//
// Schema names match ^[a-zA-Z0-9_.-]{1,128}$.
package registry
