package mocks

//go:generate mockery --name EventStore --srcpkg github.com/bigsister-lab/bigsister/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Identity --srcpkg github.com/bigsister-lab/bigsister/internal/platform --output ./platform --outpkg platformmocks --with-expecter
//go:generate mockery --name ChannelDirectory --srcpkg github.com/bigsister-lab/bigsister/internal/platform --output ./platform --outpkg platformmocks --with-expecter
//go:generate mockery --name Notifier --srcpkg github.com/bigsister-lab/bigsister/internal/platform --output ./platform --outpkg platformmocks --with-expecter
