// Package domain holds the types shared by the search engine and its
// driving/driven ports: search items, ranked matches, tick status, and the
// event an engine worker publishes to a consumer.
package domain
