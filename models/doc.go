/*
Package models defines the JSON response types for the non-image
endpoints: the variant listing served at /variants and the shared error
envelope.
*/
package models
