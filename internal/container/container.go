package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/dentalcare360/storefront/config"
	"github.com/dentalcare360/storefront/internal/application"
	"github.com/dentalcare360/storefront/internal/catalog"
	"github.com/dentalcare360/storefront/internal/domain/repository"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	pgPool      *pgxpool.Pool
	kvStore     repository.KVStore

	productCatalog *catalog.Catalog
	cartStore      *application.CartStore
	accountStore   *application.AccountStore
	checkout       *application.Checkout
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }

func SetKV(s repository.KVStore) { kvStore = s }
func GetKV() repository.KVStore  { return kvStore }

func SetCatalog(c *catalog.Catalog) { productCatalog = c }
func GetCatalog() *catalog.Catalog  { return productCatalog }

func SetCartStore(s *application.CartStore)       { cartStore = s }
func GetCartStore() *application.CartStore        { return cartStore }
func SetAccountStore(s *application.AccountStore) { accountStore = s }
func GetAccountStore() *application.AccountStore  { return accountStore }
func SetCheckout(c *application.Checkout)         { checkout = c }
func GetCheckout() *application.Checkout          { return checkout }
