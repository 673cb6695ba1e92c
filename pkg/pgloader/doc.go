// Package pgloader bridges a PostgreSQL table to the locale package's query
// loader. It owns only the caller side of the contract: establishing a pgx
// connection pool and turning a SQL query into the
// (locale, source, translation, plural) row shape the translation engine
// consumes. Query execution happens inside the callback, once per resolver
// load or reload; the engine itself never touches the database.
//
// # Usage
//
//	cfg := pgloader.Config{ConnectionString: os.Getenv("PG_CONN_URL"), RetryAttempts: 3}
//	pool, err := pgloader.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatalf("connecting: %v", err)
//	}
//	defer pool.Close()
//
//	resolver, err := locale.New(ctx, []locale.Loader{
//		pgloader.NewLoader(pool,
//			"SELECT locale, source, translation, plural FROM translations"),
//	})
//
// Schema management, transactions and connection lifetime remain the
// application's responsibility.
package pgloader
