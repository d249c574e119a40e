package main

// Version represents the current version of the application
const Version = "1.0.0"
