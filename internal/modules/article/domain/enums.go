//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Platform identifies the blogging platform a feed belongs to
// ENUM(yamitzky,jxpress,qiita,note)
type Platform string
