package model

// Node process names as known to the cluster manager.
const (
	ProcessClouderaManager = "CLOUDERA_MANAGER"

	ProcessNameNode          = "HDFS_NAMENODE"
	ProcessSecondaryNameNode = "HDFS_SECONDARYNAMENODE"
	ProcessDataNode          = "HDFS_DATANODE"
	ProcessJournalNode       = "HDFS_JOURNALNODE"
	ProcessHDFSGateway       = "HDFS_GATEWAY"

	ProcessResourceManager = "YARN_RESOURCEMANAGER"
	ProcessStandbyRM       = "YARN_STANDBYRM"
	ProcessNodeManager     = "YARN_NODEMANAGER"
	ProcessJobHistory      = "YARN_JOBHISTORY"

	ProcessOozieServer        = "OOZIE_SERVER"
	ProcessHiveServer2        = "HIVE_SERVER2"
	ProcessHiveMetastore      = "HIVE_METASTORE"
	ProcessHiveWebHCat        = "HIVE_WEBHCAT"
	ProcessHueServer          = "HUE_SERVER"
	ProcessSparkHistoryServer = "SPARK_YARN_HISTORY_SERVER"
	ProcessZooKeeperServer    = "ZOOKEEPER_SERVER"
	ProcessHBaseMaster        = "HBASE_MASTER"
	ProcessHBaseRegionServer  = "HBASE_REGIONSERVER"
	ProcessHBaseIndexer       = "HBASE_INDEXER"
	ProcessFlumeAgent         = "FLUME_AGENT"
	ProcessSentryServer       = "SENTRY_SERVER"
	ProcessSolrServer         = "SOLR_SERVER"
	ProcessSqoopServer        = "SQOOP_SERVER"
	ProcessKafkaBroker        = "KAFKA_BROKER"
	ProcessKMS                = "KMS"

	ProcessImpalaCatalogServer = "IMPALA_CATALOGSERVER"
	ProcessImpalaStateStore    = "IMPALA_STATESTORE"
	ProcessImpalaDaemon        = "IMPALAD"
)

// Cluster-wide configuration keys read by the validation rules.
const (
	ConfigServiceGeneral      = "general"
	ConfigRequireAntiAffinity = "Require Anti Affinity"

	ConfigServiceHDFS     = "HDFS"
	ConfigDFSReplication  = "dfs_replication"
	ConfigServiceDataNode = "DATANODE"
	ConfigDUReserved      = "dfs_datanode_du_reserved"
)
