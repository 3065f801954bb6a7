package main

import (
	"flag"

	"simpleTwitter/crud"
	"simpleTwitter/http"
	"simpleTwitter/storage"
)

// main is the app's entry point.
func main() {
	// Check if the flag "-prod" has been provided. It means that we're running in production.
	productionBool := flag.Bool("prod", false, "Provide this flag in production to ensure that a .config.json file is provided before the application starts.")
	flag.Parse()

	// Load configuration from a .config.json file if present, otherwise use
	// the default dev setup. In production the file is required and the app
	// will panic if no file is found.
	config := LoadConfig(*productionBool)

	// Open a database connection and execute migrations.
	dbConfig := config.Database
	db := NewDB(dbConfig.ConnectionInfo())
	err := Open(db, config.IsProd())
	must(err)
	defer Close(db)
	err = AutoMigrate(db)
	must(err)

	// Start the crud services.
	services, err := crud.NewServices(
		db.Gorm,
		crud.WithUser(config.Pepper),
		crud.WithTweet(),
		crud.WithReply(),
		crud.WithLike(),
		crud.WithFollowship(),
	)
	must(err)

	// The avatar service stores uploads in the filesystem.
	avatars := storage.NewAvatarService()

	// Set up a webserver.
	server := http.NewServer(
		config.IsProd(),
		config.SessionKey,
		config.CSRFKey,
		services.User,
		services.Tweet,
		services.Reply,
		services.Like,
		services.Followship,
		avatars,
	)

	// Serve the app.
	server.Run(config.Port)
}

// must is a little helper for shortening the panic instruction.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
