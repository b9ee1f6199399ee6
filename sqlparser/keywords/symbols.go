package keywords

import "github.com/vippsas/sqllex/sqlparser/sqldocument"

// Keyword and function tokens (range 1000-1999)
const (
	AccessibleSym sqldocument.TokenID = iota + sqldocument.KeywordTokenStart
	ActionSym
	AddSym
	AfterSym
	AgainstSym
	AllSym
	AlterSym
	AnalyzeSym
	AndSym
	AnySym
	AsSym
	AscSym
	AsciiSym
	AutoIncrementSym
	AvgSym
	BeforeSym
	BeginSym
	BetweenSym
	BigintSym
	BinarySym
	BitSym
	BlobSym
	BoolSym
	BooleanSym
	BothSym
	BtreeSym
	BySym
	CallSym
	CascadeSym
	CaseSym
	ChangeSym
	CharSym
	CharacterSym
	CharsetSym
	CheckSym
	CollateSym
	CollationSym
	ColumnSym
	ColumnsSym
	CommentSym
	CommitSym
	CommittedSym
	ConstraintSym
	ConvertSym
	CreateSym
	CrossSym
	CubeSym
	CurrentDateSym
	CurrentTimeSym
	CurrentTimestampSym
	CurrentUserSym
	CursorSym
	DatabaseSym
	DatabasesSym
	DateSym
	DatetimeSym
	DaySym
	DeallocateSym
	DecimalSym
	DeclareSym
	DefaultSym
	DelayedSym
	DeleteSym
	DescSym
	DescribeSym
	DistinctSym
	DivSym
	DoSym
	DoubleSym
	DropSym
	DualSym
	DuplicateSym
	ElseSym
	ElseifSym
	EngineSym
	EnumSym
	EscapeSym
	ExceptSym
	ExecuteSym
	ExistsSym
	ExplainSym
	FalseSym
	FetchSym
	FirstSym
	FloatSym
	ForSym
	ForceSym
	ForeignSym
	FromSym
	FullSym
	FulltextSym
	FunctionSym
	GlobalSym
	GrantSym
	GroupSym
	HandlerSym
	HavingSym
	HighPrioritySym
	HourSym
	IfSym
	IgnoreSym
	InSym
	IndexSym
	InnerSym
	InoutSym
	InsertSym
	IntSym
	IntegerSym
	IntersectSym
	IntervalSym
	IntoSym
	IsSym
	IsolationSym
	JoinSym
	JsonSym
	KeySym
	KeysSym
	KillSym
	LastSym
	LateralSym
	LeadingSym
	LeftSym
	LevelSym
	LikeSym
	LimitSym
	LinesSym
	LoadSym
	LocalSym
	LockSym
	LongtextSym
	LoopSym
	LowPrioritySym
	MatchSym
	MediumintSym
	MediumtextSym
	MinuteSym
	ModSym
	ModeSym
	MonthSym
	NamesSym
	NationalSym
	NaturalSym
	NcharSym
	NextSym
	NoSym
	NotSym
	NullSym
	NumericSym
	OffsetSym
	OnSym
	OptionSym
	OrSym
	OrderSym
	OutSym
	OuterSym
	OverSym
	PartitionSym
	PasswordSym
	PersistSym
	PersistOnlySym
	PrecisionSym
	PrepareSym
	PrimarySym
	ProcedureSym
	QuickSym
	RangeSym
	ReadSym
	RealSym
	RecursiveSym
	ReferencesSym
	RegexpSym
	ReleaseSym
	RenameSym
	RepeatSym
	RepeatableSym
	ReplaceSym
	RestrictSym
	ReturnSym
	ReturnsSym
	RevokeSym
	RightSym
	RlikeSym
	RollbackSym
	RollupSym
	RowSym
	RowsSym
	SavepointSym
	SchemaSym
	SecondSym
	SelectSym
	SerializableSym
	SessionSym
	SetSym
	ShareSym
	ShowSym
	SignedSym
	SmallintSym
	SoundsSym
	SqlCalcFoundRowsSym
	SqlNoCacheSym
	StartSym
	StatusSym
	StraightJoinSym
	TableSym
	TablesSym
	TemporarySym
	TextSym
	ThenSym
	TimeSym
	TimestampSym
	TinyintSym
	TinytextSym
	ToSym
	TrailingSym
	TransactionSym
	TriggerSym
	TrueSym
	TruncateSym
	UncommittedSym
	UnionSym
	UniqueSym
	UnknownSym
	UnlockSym
	UnsignedSym
	UpdateSym
	UseSym
	UserSym
	UsingSym
	ValueSym
	ValuesSym
	VarbinarySym
	VarcharSym
	VariablesSym
	ViewSym
	WhenSym
	WhereSym
	WhileSym
	WindowSym
	WithSym
	WorkSym
	WriteSym
	XorSym
	YearSym
	ZerofillSym

	// Functions, only recognized directly before '('
	AdddateSym
	BitAndSym
	BitOrSym
	BitXorSym
	CastSym
	CountSym
	CurdateSym
	CurtimeSym
	DateAddSym
	DateSubSym
	ExtractSym
	GroupConcatSym
	JsonArrayaggSym
	JsonObjectaggSym
	MaxSym
	MidSym
	MinSym
	NowSym
	PositionSym
	SessionUserSym
	StdSym
	StddevSym
	StddevPopSym
	StddevSampSym
	SubdateSym
	SubstrSym
	SubstringSym
	SumSym
	SysdateSym
	SystemUserSym
	TrimSym
	VarianceSym
	VarPopSym
	VarSampSym

	lastKeywordToken
)

var keywordSymbols = []Symbol{
	{Name: "ACCESSIBLE", Tok: AccessibleSym, Group: GroupKeyword},
	{Name: "ACTION", Tok: ActionSym, Group: GroupKeyword},
	{Name: "ADD", Tok: AddSym, Group: GroupKeyword},
	{Name: "AFTER", Tok: AfterSym, Group: GroupKeyword},
	{Name: "AGAINST", Tok: AgainstSym, Group: GroupKeyword},
	{Name: "ALL", Tok: AllSym, Group: GroupKeyword},
	{Name: "ALTER", Tok: AlterSym, Group: GroupKeyword},
	{Name: "ANALYZE", Tok: AnalyzeSym, Group: GroupKeyword},
	{Name: "AND", Tok: AndSym, Group: GroupKeyword},
	{Name: "ANY", Tok: AnySym, Group: GroupKeyword},
	{Name: "AS", Tok: AsSym, Group: GroupKeyword},
	{Name: "ASC", Tok: AscSym, Group: GroupKeyword},
	{Name: "ASCII", Tok: AsciiSym, Group: GroupKeyword},
	{Name: "AUTO_INCREMENT", Tok: AutoIncrementSym, Group: GroupKeyword},
	{Name: "AVG", Tok: AvgSym, Group: GroupKeyword},
	{Name: "BEFORE", Tok: BeforeSym, Group: GroupKeyword},
	{Name: "BEGIN", Tok: BeginSym, Group: GroupKeyword},
	{Name: "BETWEEN", Tok: BetweenSym, Group: GroupKeyword},
	{Name: "BIGINT", Tok: BigintSym, Group: GroupKeyword},
	{Name: "BINARY", Tok: BinarySym, Group: GroupKeyword},
	{Name: "BIT", Tok: BitSym, Group: GroupKeyword},
	{Name: "BLOB", Tok: BlobSym, Group: GroupKeyword},
	{Name: "BOOL", Tok: BoolSym, Group: GroupKeyword},
	{Name: "BOOLEAN", Tok: BooleanSym, Group: GroupKeyword},
	{Name: "BOTH", Tok: BothSym, Group: GroupKeyword},
	{Name: "BTREE", Tok: BtreeSym, Group: GroupKeyword},
	{Name: "BY", Tok: BySym, Group: GroupKeyword},
	{Name: "CALL", Tok: CallSym, Group: GroupKeyword},
	{Name: "CASCADE", Tok: CascadeSym, Group: GroupKeyword},
	{Name: "CASE", Tok: CaseSym, Group: GroupKeyword},
	{Name: "CHANGE", Tok: ChangeSym, Group: GroupKeyword},
	{Name: "CHAR", Tok: CharSym, Group: GroupKeyword},
	{Name: "CHARACTER", Tok: CharacterSym, Group: GroupKeyword},
	{Name: "CHARSET", Tok: CharsetSym, Group: GroupKeyword},
	{Name: "CHECK", Tok: CheckSym, Group: GroupKeyword},
	{Name: "COLLATE", Tok: CollateSym, Group: GroupKeyword},
	{Name: "COLLATION", Tok: CollationSym, Group: GroupKeyword},
	{Name: "COLUMN", Tok: ColumnSym, Group: GroupKeyword},
	{Name: "COLUMNS", Tok: ColumnsSym, Group: GroupKeyword},
	{Name: "COMMENT", Tok: CommentSym, Group: GroupKeyword},
	{Name: "COMMIT", Tok: CommitSym, Group: GroupKeyword},
	{Name: "COMMITTED", Tok: CommittedSym, Group: GroupKeyword},
	{Name: "CONSTRAINT", Tok: ConstraintSym, Group: GroupKeyword},
	{Name: "CONVERT", Tok: ConvertSym, Group: GroupKeyword},
	{Name: "CREATE", Tok: CreateSym, Group: GroupKeyword},
	{Name: "CROSS", Tok: CrossSym, Group: GroupKeyword},
	{Name: "CUBE", Tok: CubeSym, Group: GroupKeyword},
	{Name: "CURRENT_DATE", Tok: CurrentDateSym, Group: GroupKeyword},
	{Name: "CURRENT_TIME", Tok: CurrentTimeSym, Group: GroupKeyword},
	{Name: "CURRENT_TIMESTAMP", Tok: CurrentTimestampSym, Group: GroupKeyword},
	{Name: "CURRENT_USER", Tok: CurrentUserSym, Group: GroupKeyword},
	{Name: "CURSOR", Tok: CursorSym, Group: GroupKeyword},
	{Name: "DATABASE", Tok: DatabaseSym, Group: GroupKeyword},
	{Name: "DATABASES", Tok: DatabasesSym, Group: GroupKeyword},
	{Name: "DATE", Tok: DateSym, Group: GroupKeyword},
	{Name: "DATETIME", Tok: DatetimeSym, Group: GroupKeyword},
	{Name: "DAY", Tok: DaySym, Group: GroupKeyword},
	{Name: "DEALLOCATE", Tok: DeallocateSym, Group: GroupKeyword},
	{Name: "DECIMAL", Tok: DecimalSym, Group: GroupKeyword},
	{Name: "DECLARE", Tok: DeclareSym, Group: GroupKeyword},
	{Name: "DEFAULT", Tok: DefaultSym, Group: GroupKeyword},
	{Name: "DELAYED", Tok: DelayedSym, Group: GroupKeyword},
	{Name: "DELETE", Tok: DeleteSym, Group: GroupKeyword|GroupHintable},
	{Name: "DESC", Tok: DescSym, Group: GroupKeyword},
	{Name: "DESCRIBE", Tok: DescribeSym, Group: GroupKeyword},
	{Name: "DISTINCT", Tok: DistinctSym, Group: GroupKeyword},
	{Name: "DIV", Tok: DivSym, Group: GroupKeyword},
	{Name: "DO", Tok: DoSym, Group: GroupKeyword},
	{Name: "DOUBLE", Tok: DoubleSym, Group: GroupKeyword},
	{Name: "DROP", Tok: DropSym, Group: GroupKeyword},
	{Name: "DUAL", Tok: DualSym, Group: GroupKeyword},
	{Name: "DUPLICATE", Tok: DuplicateSym, Group: GroupKeyword},
	{Name: "ELSE", Tok: ElseSym, Group: GroupKeyword},
	{Name: "ELSEIF", Tok: ElseifSym, Group: GroupKeyword},
	{Name: "ENGINE", Tok: EngineSym, Group: GroupKeyword},
	{Name: "ENUM", Tok: EnumSym, Group: GroupKeyword},
	{Name: "ESCAPE", Tok: EscapeSym, Group: GroupKeyword},
	{Name: "EXCEPT", Tok: ExceptSym, Group: GroupKeyword},
	{Name: "EXECUTE", Tok: ExecuteSym, Group: GroupKeyword},
	{Name: "EXISTS", Tok: ExistsSym, Group: GroupKeyword},
	{Name: "EXPLAIN", Tok: ExplainSym, Group: GroupKeyword},
	{Name: "FALSE", Tok: FalseSym, Group: GroupKeyword},
	{Name: "FETCH", Tok: FetchSym, Group: GroupKeyword},
	{Name: "FIRST", Tok: FirstSym, Group: GroupKeyword},
	{Name: "FLOAT", Tok: FloatSym, Group: GroupKeyword},
	{Name: "FOR", Tok: ForSym, Group: GroupKeyword},
	{Name: "FORCE", Tok: ForceSym, Group: GroupKeyword},
	{Name: "FOREIGN", Tok: ForeignSym, Group: GroupKeyword},
	{Name: "FROM", Tok: FromSym, Group: GroupKeyword},
	{Name: "FULL", Tok: FullSym, Group: GroupKeyword},
	{Name: "FULLTEXT", Tok: FulltextSym, Group: GroupKeyword},
	{Name: "FUNCTION", Tok: FunctionSym, Group: GroupKeyword},
	{Name: "GLOBAL", Tok: GlobalSym, Group: GroupKeyword},
	{Name: "GRANT", Tok: GrantSym, Group: GroupKeyword},
	{Name: "GROUP", Tok: GroupSym, Group: GroupKeyword},
	{Name: "HANDLER", Tok: HandlerSym, Group: GroupKeyword},
	{Name: "HAVING", Tok: HavingSym, Group: GroupKeyword},
	{Name: "HIGH_PRIORITY", Tok: HighPrioritySym, Group: GroupKeyword},
	{Name: "HOUR", Tok: HourSym, Group: GroupKeyword},
	{Name: "IF", Tok: IfSym, Group: GroupKeyword},
	{Name: "IGNORE", Tok: IgnoreSym, Group: GroupKeyword},
	{Name: "IN", Tok: InSym, Group: GroupKeyword},
	{Name: "INDEX", Tok: IndexSym, Group: GroupKeyword},
	{Name: "INNER", Tok: InnerSym, Group: GroupKeyword},
	{Name: "INOUT", Tok: InoutSym, Group: GroupKeyword},
	{Name: "INSERT", Tok: InsertSym, Group: GroupKeyword|GroupHintable},
	{Name: "INT", Tok: IntSym, Group: GroupKeyword},
	{Name: "INTEGER", Tok: IntegerSym, Group: GroupKeyword},
	{Name: "INTERSECT", Tok: IntersectSym, Group: GroupKeyword},
	{Name: "INTERVAL", Tok: IntervalSym, Group: GroupKeyword},
	{Name: "INTO", Tok: IntoSym, Group: GroupKeyword},
	{Name: "IS", Tok: IsSym, Group: GroupKeyword},
	{Name: "ISOLATION", Tok: IsolationSym, Group: GroupKeyword},
	{Name: "JOIN", Tok: JoinSym, Group: GroupKeyword},
	{Name: "JSON", Tok: JsonSym, Group: GroupKeyword},
	{Name: "KEY", Tok: KeySym, Group: GroupKeyword},
	{Name: "KEYS", Tok: KeysSym, Group: GroupKeyword},
	{Name: "KILL", Tok: KillSym, Group: GroupKeyword},
	{Name: "LAST", Tok: LastSym, Group: GroupKeyword},
	{Name: "LATERAL", Tok: LateralSym, Group: GroupKeyword},
	{Name: "LEADING", Tok: LeadingSym, Group: GroupKeyword},
	{Name: "LEFT", Tok: LeftSym, Group: GroupKeyword},
	{Name: "LEVEL", Tok: LevelSym, Group: GroupKeyword},
	{Name: "LIKE", Tok: LikeSym, Group: GroupKeyword},
	{Name: "LIMIT", Tok: LimitSym, Group: GroupKeyword},
	{Name: "LINES", Tok: LinesSym, Group: GroupKeyword},
	{Name: "LOAD", Tok: LoadSym, Group: GroupKeyword},
	{Name: "LOCAL", Tok: LocalSym, Group: GroupKeyword},
	{Name: "LOCK", Tok: LockSym, Group: GroupKeyword},
	{Name: "LONGTEXT", Tok: LongtextSym, Group: GroupKeyword},
	{Name: "LOOP", Tok: LoopSym, Group: GroupKeyword},
	{Name: "LOW_PRIORITY", Tok: LowPrioritySym, Group: GroupKeyword},
	{Name: "MATCH", Tok: MatchSym, Group: GroupKeyword},
	{Name: "MEDIUMINT", Tok: MediumintSym, Group: GroupKeyword},
	{Name: "MEDIUMTEXT", Tok: MediumtextSym, Group: GroupKeyword},
	{Name: "MINUTE", Tok: MinuteSym, Group: GroupKeyword},
	{Name: "MOD", Tok: ModSym, Group: GroupKeyword},
	{Name: "MODE", Tok: ModeSym, Group: GroupKeyword},
	{Name: "MONTH", Tok: MonthSym, Group: GroupKeyword},
	{Name: "NAMES", Tok: NamesSym, Group: GroupKeyword},
	{Name: "NATIONAL", Tok: NationalSym, Group: GroupKeyword},
	{Name: "NATURAL", Tok: NaturalSym, Group: GroupKeyword},
	{Name: "NCHAR", Tok: NcharSym, Group: GroupKeyword},
	{Name: "NEXT", Tok: NextSym, Group: GroupKeyword},
	{Name: "NO", Tok: NoSym, Group: GroupKeyword},
	{Name: "NOT", Tok: NotSym, Group: GroupKeyword},
	{Name: "NULL", Tok: NullSym, Group: GroupKeyword},
	{Name: "NUMERIC", Tok: NumericSym, Group: GroupKeyword},
	{Name: "OFFSET", Tok: OffsetSym, Group: GroupKeyword},
	{Name: "ON", Tok: OnSym, Group: GroupKeyword},
	{Name: "OPTION", Tok: OptionSym, Group: GroupKeyword},
	{Name: "OR", Tok: OrSym, Group: GroupKeyword},
	{Name: "ORDER", Tok: OrderSym, Group: GroupKeyword},
	{Name: "OUT", Tok: OutSym, Group: GroupKeyword},
	{Name: "OUTER", Tok: OuterSym, Group: GroupKeyword},
	{Name: "OVER", Tok: OverSym, Group: GroupKeyword},
	{Name: "PARTITION", Tok: PartitionSym, Group: GroupKeyword},
	{Name: "PASSWORD", Tok: PasswordSym, Group: GroupKeyword},
	{Name: "PERSIST", Tok: PersistSym, Group: GroupKeyword},
	{Name: "PERSIST_ONLY", Tok: PersistOnlySym, Group: GroupKeyword},
	{Name: "PRECISION", Tok: PrecisionSym, Group: GroupKeyword},
	{Name: "PREPARE", Tok: PrepareSym, Group: GroupKeyword},
	{Name: "PRIMARY", Tok: PrimarySym, Group: GroupKeyword},
	{Name: "PROCEDURE", Tok: ProcedureSym, Group: GroupKeyword},
	{Name: "QUICK", Tok: QuickSym, Group: GroupKeyword},
	{Name: "RANGE", Tok: RangeSym, Group: GroupKeyword},
	{Name: "READ", Tok: ReadSym, Group: GroupKeyword},
	{Name: "REAL", Tok: RealSym, Group: GroupKeyword},
	{Name: "RECURSIVE", Tok: RecursiveSym, Group: GroupKeyword},
	{Name: "REFERENCES", Tok: ReferencesSym, Group: GroupKeyword},
	{Name: "REGEXP", Tok: RegexpSym, Group: GroupKeyword},
	{Name: "RELEASE", Tok: ReleaseSym, Group: GroupKeyword},
	{Name: "RENAME", Tok: RenameSym, Group: GroupKeyword},
	{Name: "REPEAT", Tok: RepeatSym, Group: GroupKeyword},
	{Name: "REPEATABLE", Tok: RepeatableSym, Group: GroupKeyword},
	{Name: "REPLACE", Tok: ReplaceSym, Group: GroupKeyword|GroupHintable},
	{Name: "RESTRICT", Tok: RestrictSym, Group: GroupKeyword},
	{Name: "RETURN", Tok: ReturnSym, Group: GroupKeyword},
	{Name: "RETURNS", Tok: ReturnsSym, Group: GroupKeyword},
	{Name: "REVOKE", Tok: RevokeSym, Group: GroupKeyword},
	{Name: "RIGHT", Tok: RightSym, Group: GroupKeyword},
	{Name: "RLIKE", Tok: RlikeSym, Group: GroupKeyword},
	{Name: "ROLLBACK", Tok: RollbackSym, Group: GroupKeyword},
	{Name: "ROLLUP", Tok: RollupSym, Group: GroupKeyword},
	{Name: "ROW", Tok: RowSym, Group: GroupKeyword},
	{Name: "ROWS", Tok: RowsSym, Group: GroupKeyword},
	{Name: "SAVEPOINT", Tok: SavepointSym, Group: GroupKeyword},
	{Name: "SCHEMA", Tok: SchemaSym, Group: GroupKeyword},
	{Name: "SECOND", Tok: SecondSym, Group: GroupKeyword},
	{Name: "SELECT", Tok: SelectSym, Group: GroupKeyword|GroupHintable},
	{Name: "SERIALIZABLE", Tok: SerializableSym, Group: GroupKeyword},
	{Name: "SESSION", Tok: SessionSym, Group: GroupKeyword},
	{Name: "SET", Tok: SetSym, Group: GroupKeyword},
	{Name: "SHARE", Tok: ShareSym, Group: GroupKeyword},
	{Name: "SHOW", Tok: ShowSym, Group: GroupKeyword},
	{Name: "SIGNED", Tok: SignedSym, Group: GroupKeyword},
	{Name: "SMALLINT", Tok: SmallintSym, Group: GroupKeyword},
	{Name: "SOUNDS", Tok: SoundsSym, Group: GroupKeyword},
	{Name: "SQL_CALC_FOUND_ROWS", Tok: SqlCalcFoundRowsSym, Group: GroupKeyword},
	{Name: "SQL_NO_CACHE", Tok: SqlNoCacheSym, Group: GroupKeyword},
	{Name: "START", Tok: StartSym, Group: GroupKeyword},
	{Name: "STATUS", Tok: StatusSym, Group: GroupKeyword},
	{Name: "STRAIGHT_JOIN", Tok: StraightJoinSym, Group: GroupKeyword},
	{Name: "TABLE", Tok: TableSym, Group: GroupKeyword},
	{Name: "TABLES", Tok: TablesSym, Group: GroupKeyword},
	{Name: "TEMPORARY", Tok: TemporarySym, Group: GroupKeyword},
	{Name: "TEXT", Tok: TextSym, Group: GroupKeyword},
	{Name: "THEN", Tok: ThenSym, Group: GroupKeyword},
	{Name: "TIME", Tok: TimeSym, Group: GroupKeyword},
	{Name: "TIMESTAMP", Tok: TimestampSym, Group: GroupKeyword},
	{Name: "TINYINT", Tok: TinyintSym, Group: GroupKeyword},
	{Name: "TINYTEXT", Tok: TinytextSym, Group: GroupKeyword},
	{Name: "TO", Tok: ToSym, Group: GroupKeyword},
	{Name: "TRAILING", Tok: TrailingSym, Group: GroupKeyword},
	{Name: "TRANSACTION", Tok: TransactionSym, Group: GroupKeyword},
	{Name: "TRIGGER", Tok: TriggerSym, Group: GroupKeyword},
	{Name: "TRUE", Tok: TrueSym, Group: GroupKeyword},
	{Name: "TRUNCATE", Tok: TruncateSym, Group: GroupKeyword},
	{Name: "UNCOMMITTED", Tok: UncommittedSym, Group: GroupKeyword},
	{Name: "UNION", Tok: UnionSym, Group: GroupKeyword},
	{Name: "UNIQUE", Tok: UniqueSym, Group: GroupKeyword},
	{Name: "UNKNOWN", Tok: UnknownSym, Group: GroupKeyword},
	{Name: "UNLOCK", Tok: UnlockSym, Group: GroupKeyword},
	{Name: "UNSIGNED", Tok: UnsignedSym, Group: GroupKeyword},
	{Name: "UPDATE", Tok: UpdateSym, Group: GroupKeyword|GroupHintable},
	{Name: "USE", Tok: UseSym, Group: GroupKeyword},
	{Name: "USER", Tok: UserSym, Group: GroupKeyword},
	{Name: "USING", Tok: UsingSym, Group: GroupKeyword},
	{Name: "VALUE", Tok: ValueSym, Group: GroupKeyword},
	{Name: "VALUES", Tok: ValuesSym, Group: GroupKeyword},
	{Name: "VARBINARY", Tok: VarbinarySym, Group: GroupKeyword},
	{Name: "VARCHAR", Tok: VarcharSym, Group: GroupKeyword},
	{Name: "VARIABLES", Tok: VariablesSym, Group: GroupKeyword},
	{Name: "VIEW", Tok: ViewSym, Group: GroupKeyword},
	{Name: "WHEN", Tok: WhenSym, Group: GroupKeyword},
	{Name: "WHERE", Tok: WhereSym, Group: GroupKeyword},
	{Name: "WHILE", Tok: WhileSym, Group: GroupKeyword},
	{Name: "WINDOW", Tok: WindowSym, Group: GroupKeyword},
	{Name: "WITH", Tok: WithSym, Group: GroupKeyword},
	{Name: "WORK", Tok: WorkSym, Group: GroupKeyword},
	{Name: "WRITE", Tok: WriteSym, Group: GroupKeyword},
	{Name: "XOR", Tok: XorSym, Group: GroupKeyword},
	{Name: "YEAR", Tok: YearSym, Group: GroupKeyword},
	{Name: "ZEROFILL", Tok: ZerofillSym, Group: GroupKeyword},
}

var functionSymbols = []Symbol{
	{Name: "ADDDATE", Tok: AdddateSym, Group: GroupFunction},
	{Name: "BIT_AND", Tok: BitAndSym, Group: GroupFunction},
	{Name: "BIT_OR", Tok: BitOrSym, Group: GroupFunction},
	{Name: "BIT_XOR", Tok: BitXorSym, Group: GroupFunction},
	{Name: "CAST", Tok: CastSym, Group: GroupFunction},
	{Name: "COUNT", Tok: CountSym, Group: GroupFunction},
	{Name: "CURDATE", Tok: CurdateSym, Group: GroupFunction},
	{Name: "CURTIME", Tok: CurtimeSym, Group: GroupFunction},
	{Name: "DATE_ADD", Tok: DateAddSym, Group: GroupFunction},
	{Name: "DATE_SUB", Tok: DateSubSym, Group: GroupFunction},
	{Name: "EXTRACT", Tok: ExtractSym, Group: GroupFunction},
	{Name: "GROUP_CONCAT", Tok: GroupConcatSym, Group: GroupFunction},
	{Name: "JSON_ARRAYAGG", Tok: JsonArrayaggSym, Group: GroupFunction},
	{Name: "JSON_OBJECTAGG", Tok: JsonObjectaggSym, Group: GroupFunction},
	{Name: "MAX", Tok: MaxSym, Group: GroupFunction},
	{Name: "MID", Tok: MidSym, Group: GroupFunction},
	{Name: "MIN", Tok: MinSym, Group: GroupFunction},
	{Name: "NOW", Tok: NowSym, Group: GroupFunction},
	{Name: "POSITION", Tok: PositionSym, Group: GroupFunction},
	{Name: "SESSION_USER", Tok: SessionUserSym, Group: GroupFunction},
	{Name: "STD", Tok: StdSym, Group: GroupFunction},
	{Name: "STDDEV", Tok: StddevSym, Group: GroupFunction},
	{Name: "STDDEV_POP", Tok: StddevPopSym, Group: GroupFunction},
	{Name: "STDDEV_SAMP", Tok: StddevSampSym, Group: GroupFunction},
	{Name: "SUBDATE", Tok: SubdateSym, Group: GroupFunction},
	{Name: "SUBSTR", Tok: SubstrSym, Group: GroupFunction},
	{Name: "SUBSTRING", Tok: SubstringSym, Group: GroupFunction},
	{Name: "SUM", Tok: SumSym, Group: GroupFunction},
	{Name: "SYSDATE", Tok: SysdateSym, Group: GroupFunction},
	{Name: "SYSTEM_USER", Tok: SystemUserSym, Group: GroupFunction},
	{Name: "TRIM", Tok: TrimSym, Group: GroupFunction},
	{Name: "VARIANCE", Tok: VarianceSym, Group: GroupFunction},
	{Name: "VAR_POP", Tok: VarPopSym, Group: GroupFunction},
	{Name: "VAR_SAMP", Tok: VarSampSym, Group: GroupFunction},
}
